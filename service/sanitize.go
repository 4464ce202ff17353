package service

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var errEmptyFragment = errors.New("explanation has no text content")

var allowedTags = map[string]bool{
	"h3": true, "h4": true, "p": true, "br": true,
	"strong": true, "b": true, "em": true, "i": true,
	"ul": true, "ol": true, "li": true,
}

const droppedTags = "script, style, iframe, object, embed, link, meta, form, input, button, noscript, template, svg"

// sanitizeFragment reduces model output to a small set of formatting tags
// with no attributes, so it can be inserted into the page as-is.
func sanitizeFragment(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stripCodeFence(raw)))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	body.Find(droppedTags).Remove()

	body.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			n.Attr = nil
		}
		if allowedTags[goquery.NodeName(sel)] {
			return
		}
		if sel.Contents().Length() > 0 {
			sel.Contents().Unwrap()
		} else {
			sel.Remove()
		}
	})

	if strings.TrimSpace(body.Text()) == "" {
		return "", errEmptyFragment
	}
	out, err := body.Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// stripCodeFence removes a surrounding ```html ... ``` block, which models
// add despite being told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "<>") {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
