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

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// yahooSearch is the response structure from the Yahoo search API.
type yahooSearch struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

func (f *YahooFetcher) Search(query string) ([]model.SearchMatch, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v1/finance/search?q=%s&quotesCount=10&newsCount=0",
		url.QueryEscape(query))
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}
	var res yahooSearch
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("yahoo decode search: %w", err)
	}
	matches := make([]model.SearchMatch, 0, len(res.Quotes))
	for _, q := range res.Quotes {
		if q.Symbol == "" {
			continue
		}
		matches = append(matches, model.SearchMatch{Symbol: q.Symbol, Exchange: q.Exchange})
	}
	return matches, nil
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) History(symbol, rng, interval string) ([]model.OHLCV, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, rng)
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, nil // no data for this symbol
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) ||
			i >= len(quote.Close) || i >= len(quote.Volume) {
			break
		}
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// yahooNum is Yahoo's raw/fmt number wrapper.
type yahooNum struct {
	Raw *float64 `json:"raw"`
}

// yahooSummary is the response structure from the quoteSummary API.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				LongName  string   `json:"longName"`
				ShortName string   `json:"shortName"`
				MarketCap yahooNum `json:"marketCap"`
			} `json:"price"`
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Website             string `json:"website"`
				LongBusinessSummary string `json:"longBusinessSummary"`
				CompanyOfficers     []struct {
					Name string `json:"name"`
				} `json:"companyOfficers"`
			} `json:"assetProfile"`
			SummaryDetail *struct {
				TrailingPE       yahooNum `json:"trailingPE"`
				DividendYield    yahooNum `json:"dividendYield"`
				Beta             yahooNum `json:"beta"`
				FiftyTwoWeekHigh yahooNum `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooNum `json:"fiftyTwoWeekLow"`
				AverageVolume    yahooNum `json:"averageVolume"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				TrailingEps yahooNum `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (f *YahooFetcher) Info(symbol string) (*model.CompanyProfile, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,assetProfile,summaryDetail,defaultKeyStatistics",
		url.PathEscape(symbol))
	body, err := f.get(u)
	if err != nil {
		return nil, err
	}

	var sum yahooSummary
	if err := json.Unmarshal(body, &sum); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if sum.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", sum.QuoteSummary.Error.Description)
	}
	if len(sum.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no fundamentals for %s", symbol)
	}

	r := sum.QuoteSummary.Result[0]
	p := &model.CompanyProfile{}
	if r.Price != nil {
		p.Name = r.Price.LongName
		if p.Name == "" {
			p.Name = r.Price.ShortName
		}
		p.MarketCap = r.Price.MarketCap.Raw
	}
	if p.Name == "" {
		return nil, fmt.Errorf("yahoo: no company name for %s", symbol)
	}
	if ap := r.AssetProfile; ap != nil {
		p.Sector = ap.Sector
		p.Industry = ap.Industry
		p.Website = ap.Website
		p.Description = ap.LongBusinessSummary
		if len(ap.CompanyOfficers) > 0 {
			p.CEO = ap.CompanyOfficers[0].Name
		}
	}
	if sd := r.SummaryDetail; sd != nil {
		p.PERatio = sd.TrailingPE.Raw
		p.DividendYield = sd.DividendYield.Raw
		p.Beta = sd.Beta.Raw
		p.FiftyTwoWeekHigh = sd.FiftyTwoWeekHigh.Raw
		p.FiftyTwoWeekLow = sd.FiftyTwoWeekLow.Raw
		p.AvgVolume = sd.AverageVolume.Raw
	}
	if ks := r.DefaultKeyStatistics; ks != nil {
		p.EPS = ks.TrailingEps.Raw
	}
	return p, nil
}
