package reporting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

const (
	topGroupCount = 5
	othersLabel   = "Others"
	unknownLabel  = "Unknown"
)

// GroupProfitByCurrency reduces per-pair profit rows to the pie chart buckets:
// profits are summed per secondary currency (the part after "/" in the pair
// label, or the whole label when there is no separator), sorted descending,
// the top five kept verbatim and everything else folded into a single "Others"
// bucket. "Others" is included only when its value is strictly positive, so
// the output holds at most six entries.
func GroupProfitByCurrency(rows []domain.PairProfit) []domain.CurrencyProfitGroup {
	if len(rows) == 0 {
		return []domain.CurrencyProfitGroup{}
	}

	sums := make(map[string]decimal.Decimal)
	for _, row := range rows {
		key := secondaryCurrency(row.PairLabel)
		sums[key] = sums[key].Add(row.TotalProfitUSD)
	}

	groups := make([]domain.CurrencyProfitGroup, 0, len(sums))
	for label, profit := range sums {
		groups = append(groups, domain.CurrencyProfitGroup{Label: label, Profit: profit})
	}

	// Descending by profit, label as tie-break so the result is stable under
	// input reordering.
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Profit.Equal(groups[j].Profit) {
			return groups[i].Profit.GreaterThan(groups[j].Profit)
		}
		return groups[i].Label < groups[j].Label
	})

	if len(groups) <= topGroupCount {
		return groups
	}

	others := decimal.Zero
	for _, g := range groups[topGroupCount:] {
		others = others.Add(g.Profit)
	}

	result := groups[:topGroupCount:topGroupCount]
	if others.IsPositive() {
		result = append(result, domain.CurrencyProfitGroup{Label: othersLabel, Profit: others})
	}
	return result
}

// secondaryCurrency extracts the grouping key from a pair label like "USD/ARS".
func secondaryCurrency(pairLabel string) string {
	if pairLabel == "" {
		return unknownLabel
	}
	if _, after, found := strings.Cut(pairLabel, "/"); found && after != "" {
		return after
	}
	return pairLabel
}
