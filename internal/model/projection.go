package model

// InvestmentProjection is the result of projecting a hypothetical investment
// forward under a constant-yield compound-growth assumption.
type InvestmentProjection struct {
	Amount              float64
	Years               int
	SharePrice          float64
	NumShares           float64
	AnnualReturn        float64 // fraction, e.g. 0.10
	FutureValue         float64
	AnnualizedReturnPct float64
	CumulativeReturnPct float64
	TotalDividends      float64
	Beta                float64
	RiskAdjustedPct     float64
	VolFactor           float64 // fraction used for the value range
	LowerBound          float64
	UpperBound          float64

	FractionalShares bool   // fewer than one whole share
	Remark           string // recommendation-tied closing remark
}
