package model

// CompanyProfile holds static and slow-changing company fundamentals.
// Numeric fields are nil when the provider does not report them; string
// fields are empty. Callers render missing values as "N/A".
type CompanyProfile struct {
	Name        string
	Sector      string
	Industry    string
	CEO         string
	Website     string
	Description string

	MarketCap        *float64
	PERatio          *float64
	EPS              *float64
	DividendYield    *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	Beta             *float64
	AvgVolume        *float64
}
