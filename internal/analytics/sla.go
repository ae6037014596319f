package analytics

import (
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// SLAComplianceSummary is the whole-dataset compliance rollup.
type SLAComplianceSummary struct {
	Total         int      `json:"total_tickets"`
	Compliant     int      `json:"compliant_tickets"`
	Breached      int      `json:"breached_tickets"`
	CompliancePct *float64 `json:"compliance_rate_percent"`
	BreachPct     *float64 `json:"breach_rate_percent"`
}

// SLASummary computes total, compliant and breached counts with compliance
// percentage. An empty collection yields nil percentages, not zero.
func SLASummary(tickets []domain.Ticket) SLAComplianceSummary {
	breached := countBreached(tickets)
	total := len(tickets)
	return SLAComplianceSummary{
		Total:         total,
		Compliant:     total - breached,
		Breached:      breached,
		CompliancePct: ratio(total-breached, total),
		BreachPct:     ratio(breached, total),
	}
}
