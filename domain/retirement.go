package domain

type RetirementInput struct {
	CurrentAge      int     `json:"currentAge"`
	RetirementAge   int     `json:"retirementAge"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	InflationRate   float64 `json:"inflationRate"`
	ExpectedReturn  float64 `json:"expectedReturn"`
}

type RetirementResult struct {
	YearsToRetirement      int     `json:"yearsToRetirement"`
	FutureMonthlyExpenses  float64 `json:"futureMonthlyExpenses"`
	CorpusNeeded           float64 `json:"corpusNeeded"`
	MonthlySavingsRequired float64 `json:"monthlySavingsRequired"`
}
