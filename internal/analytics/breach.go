package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// BreachRateRow carries per-group SLA breach and compliance rates.
type BreachRateRow struct {
	Key           string   `json:"key"`
	Total         int      `json:"total_tickets"`
	Breached      int      `json:"breached_tickets"`
	Compliant     int      `json:"compliant_tickets"`
	BreachPct     *float64 `json:"breach_rate_percent"`
	CompliancePct *float64 `json:"compliance_rate_percent"`
}

// BreachRates partitions tickets by the grouping key and computes breached
// and compliant counts with both rates rounded to two decimals; for any
// non-empty group the two rates sum to 100.00 up to rounding. Rows are
// ordered by breach rate descending, ties by total count descending.
func BreachRates(tickets []domain.Ticket, key KeyFunc) []BreachRateRow {
	groups := groupBy(tickets, key)

	rows := make([]BreachRateRow, 0, len(groups))
	for k, members := range groups {
		breached := countBreached(members)
		rows = append(rows, BreachRateRow{
			Key:           k,
			Total:         len(members),
			Breached:      breached,
			Compliant:     len(members) - breached,
			BreachPct:     ratio(breached, len(members)),
			CompliancePct: ratio(len(members)-breached, len(members)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		bi, bj := derefOrZero(rows[i].BreachPct), derefOrZero(rows[j].BreachPct)
		if bi != bj {
			return bi > bj
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
