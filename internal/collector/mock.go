package collector

import (
	"time"

	"StockAdvisor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Matches     []model.SearchMatch
	SearchErr   error
	MonthlyData []model.OHLCV
	YearlyData  []model.OHLCV
	HistoryErr  error
	Profile     *model.CompanyProfile
	InfoErr     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Search(_ string) ([]model.SearchMatch, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Matches, nil
}

func (m *MockFetcher) History(_, rng, _ string) ([]model.OHLCV, error) {
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	if rng == RangeOneYear {
		if m.YearlyData != nil {
			return m.YearlyData, nil
		}
		return GenerateBars(100, 252), nil
	}
	if m.MonthlyData != nil {
		return m.MonthlyData, nil
	}
	return GenerateBars(100, 22), nil
}

func (m *MockFetcher) Info(_ string) (*model.CompanyProfile, error) {
	if m.InfoErr != nil {
		return nil, m.InfoErr
	}
	if m.Profile != nil {
		return m.Profile, nil
	}
	return &model.CompanyProfile{Name: "Mock Industries Ltd"}, nil
}

// GenerateBars builds a gently trending daily series around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
