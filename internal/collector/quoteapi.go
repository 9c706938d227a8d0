package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockAdvisor/internal/model"
)

// QuoteAPIFetcher implements Fetcher against a generic REST quote server,
// for deployments that proxy or replace Yahoo with an internal feed.
type QuoteAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewQuoteAPIFetcher creates a new fetcher with optional proxy support.
func NewQuoteAPIFetcher(baseURL, apiKey, proxyURL string) *QuoteAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &QuoteAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *QuoteAPIFetcher) Name() string { return "quoteapi" }

func (f *QuoteAPIFetcher) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("quoteapi fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("quoteapi: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("quoteapi decode: %w", err)
	}
	return nil
}

type apiMatch struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

func (f *QuoteAPIFetcher) Search(query string) ([]model.SearchMatch, error) {
	endpoint := fmt.Sprintf("%s/api/v1/search?query=%s", f.BaseURL, url.QueryEscape(query))
	var raw []apiMatch
	if err := f.get(endpoint, &raw); err != nil {
		return nil, err
	}
	matches := make([]model.SearchMatch, len(raw))
	for i, m := range raw {
		matches[i] = model.SearchMatch{Symbol: m.Symbol, Exchange: m.Exchange}
	}
	return matches, nil
}

// apiBar is the expected JSON shape for one bar.
type apiBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *QuoteAPIFetcher) History(symbol, rng, interval string) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s&interval=%s",
		f.BaseURL, url.QueryEscape(symbol), rng, interval)
	var raw []apiBar
	if err := f.get(endpoint, &raw); err != nil {
		return nil, err
	}
	bars := make([]model.OHLCV, len(raw))
	for i, b := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(b.Timestamp, 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// apiInfo is the expected JSON shape for fundamentals.
type apiInfo struct {
	Name             string   `json:"name"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	CEO              string   `json:"ceo"`
	Website          string   `json:"website"`
	Description      string   `json:"description"`
	MarketCap        *float64 `json:"market_cap"`
	PERatio          *float64 `json:"pe_ratio"`
	EPS              *float64 `json:"eps"`
	DividendYield    *float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh *float64 `json:"high_52w"`
	FiftyTwoWeekLow  *float64 `json:"low_52w"`
	Beta             *float64 `json:"beta"`
	AvgVolume        *float64 `json:"avg_volume"`
}

func (f *QuoteAPIFetcher) Info(symbol string) (*model.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/api/v1/info?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var raw apiInfo
	if err := f.get(endpoint, &raw); err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("quoteapi: no company name for %s", symbol)
	}
	return &model.CompanyProfile{
		Name:             raw.Name,
		Sector:           raw.Sector,
		Industry:         raw.Industry,
		CEO:              raw.CEO,
		Website:          raw.Website,
		Description:      raw.Description,
		MarketCap:        raw.MarketCap,
		PERatio:          raw.PERatio,
		EPS:              raw.EPS,
		DividendYield:    raw.DividendYield,
		FiftyTwoWeekHigh: raw.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  raw.FiftyTwoWeekLow,
		Beta:             raw.Beta,
		AvgVolume:        raw.AvgVolume,
	}, nil
}
