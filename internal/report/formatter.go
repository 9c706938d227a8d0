package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"StockAdvisor/internal/advisor"
	"StockAdvisor/internal/model"
)

const descriptionLimit = 600

func money(v float64) string {
	return "₹" + humanize.CommafWithDigits(v, 2)
}

func optMoney(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return money(*v)
}

func optNum(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func recEmoji(rec model.Recommendation) string {
	switch rec {
	case model.RecStrongBuy:
		return "✅ " + string(rec)
	case model.RecHold:
		return "⚠️ " + string(rec)
	default:
		return "🚨 " + string(rec)
	}
}

// FormatStockReport renders a full lookup result for the terminal.
func FormatStockReport(res *advisor.Result) string {
	p := res.Profile
	m := res.Metrics

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n%s (%s)\n", p.Name, res.Ticker))
	b.WriteString(fmt.Sprintf("Live Price: %s\n\n", money(m.LatestPrice)))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"🔼 High", money(m.HighPrice)},
		{"🔽 Low", money(m.LowPrice)},
		{"📊 Volume", humanize.Commaf(m.Volume)},
		{"📉 Avg Volume (3M)", optNumCommas(p.AvgVolume)},
		{"💰 Market Cap", optMoney(p.MarketCap)},
		{"📈 P/E Ratio", optNum(p.PERatio)},
		{"📊 EPS", optNum(p.EPS)},
		{"💵 Dividend Yield", optNum(p.DividendYield)},
		{"📅 52W High", optMoney(p.FiftyTwoWeekHigh)},
		{"📅 52W Low", optMoney(p.FiftyTwoWeekLow)},
		{"📈 1Y Change", fmt.Sprintf("%.2f%%", m.YearlyChange)},
		{"📊 Price Change (Day)", fmt.Sprintf("%s (%.2f%%)", money(m.PriceChange), m.PriceChangePct)},
		{"⚡ Volatility (Annual)", optNum(m.Volatility)},
		{"🛡️ Beta", optNum(p.Beta)},
		{"💪 Financial Health", string(m.Health)},
	})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("📢 Recommendation: %s\n", recEmoji(m.Recommendation)))
	b.WriteString(fmt.Sprintf("   Advice: %s\n\n", m.Advice))

	b.WriteString(fmt.Sprintf("🏢 About %s\n", p.Name))
	if p.Sector != "" {
		b.WriteString(fmt.Sprintf("   Sector: %s\n", p.Sector))
	}
	if p.Industry != "" {
		b.WriteString(fmt.Sprintf("   Industry: %s\n", p.Industry))
	}
	if p.CEO != "" {
		b.WriteString(fmt.Sprintf("   CEO: %s\n", p.CEO))
	}
	if p.Website != "" {
		b.WriteString(fmt.Sprintf("   Website: %s\n", p.Website))
	}
	if p.Description != "" {
		desc := p.Description
		if len(desc) > descriptionLimit {
			desc = desc[:descriptionLimit] + "..."
		}
		b.WriteString(fmt.Sprintf("   Summary: %s\n", desc))
	}
	return b.String()
}

func optNumCommas(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Commaf(*v)
}

// FormatProjection renders an investment projection.
func FormatProjection(companyName string, p *model.InvestmentProjection) string {
	var b strings.Builder
	b.WriteString("\n💡 Investment Projection\n")
	b.WriteString(fmt.Sprintf("With %s invested in %s for %d years:\n", money(p.Amount), companyName, p.Years))
	b.WriteString(fmt.Sprintf("   📊 Shares: %.2f at %s each\n", p.NumShares, money(p.SharePrice)))
	b.WriteString(fmt.Sprintf("   💰 Initial Investment: %s\n", money(p.Amount)))
	b.WriteString(fmt.Sprintf("   📈 Projected Value: %s (%.1f%% annual return)\n", money(p.FutureValue), p.AnnualReturn*100))
	b.WriteString(fmt.Sprintf("   📅 Annualized Return: %.2f%%\n", p.AnnualizedReturnPct))
	b.WriteString(fmt.Sprintf("   🌟 Cumulative Return: %.2f%%\n", p.CumulativeReturnPct))
	b.WriteString(fmt.Sprintf("   💵 Total Dividends Earned: %s (assuming constant yield)\n", money(p.TotalDividends)))
	b.WriteString(fmt.Sprintf("   🛡️ Risk-Adjusted Return: %.2f%% (adjusted by Beta: %g)\n", p.RiskAdjustedPct, p.Beta))
	b.WriteString(fmt.Sprintf("   📉 Value Range (Volatility ±%.1f%%): %s - %s\n",
		p.VolFactor*100, money(p.LowerBound), money(p.UpperBound)))
	if p.FractionalShares {
		b.WriteString("   ⚠️ Note: Less than 1 share. Fractional shares may not be tradable on all platforms.\n")
	}
	b.WriteString(fmt.Sprintf("   %s\n", p.Remark))
	b.WriteString("   Note: Projections assume stable conditions and constant dividend yield.\n")
	return b.String()
}

// FormatHistory renders the session's search history.
func FormatHistory(names []string) string {
	if len(names) == 0 {
		return "📜 No history yet.\n"
	}
	var b strings.Builder
	b.WriteString("📜 Search History\n")
	for i, n := range names {
		b.WriteString(fmt.Sprintf("   %d. %s\n", i+1, n))
	}
	return b.String()
}
