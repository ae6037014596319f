package analytics

import (
	"sort"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// DefaultOutlierPercentile is the cutoff used when none is supplied.
const DefaultOutlierPercentile = 95.0

// OutlierTicket is a ticket whose resolution time exceeds the percentile
// threshold, annotated with the excess.
type OutlierTicket struct {
	ID                  string          `json:"id"`
	Category            string          `json:"category"`
	AssignedTeam        string          `json:"assigned_team"`
	Priority            domain.Priority `json:"priority"`
	ResolutionHours     float64         `json:"resolution_hours"`
	HoursAboveThreshold float64         `json:"hours_above_threshold"`
}

// OutlierReport is the percentile threshold plus every ticket above it.
type OutlierReport struct {
	Percentile     float64         `json:"percentile"`
	ThresholdHours *float64        `json:"threshold_hours"`
	Tickets        []OutlierTicket `json:"tickets"`
}

// Outliers flags tickets whose resolution hours strictly exceed the p-th
// percentile of the full set, computed by linear interpolation between order
// statistics. With fewer than two tickets the percentile is undefined and
// the report is empty. Tickets are ordered by resolution hours descending.
func Outliers(tickets []domain.Ticket, percentile float64) OutlierReport {
	if percentile <= 0 || percentile >= 100 {
		percentile = DefaultOutlierPercentile
	}
	report := OutlierReport{Percentile: percentile, Tickets: []OutlierTicket{}}

	threshold := Percentile(resolutionHours(tickets), percentile)
	if threshold == nil {
		return report
	}
	report.ThresholdHours = Float(Round2(*threshold))

	for _, t := range tickets {
		if t.ResolutionHours > *threshold {
			report.Tickets = append(report.Tickets, OutlierTicket{
				ID:                  t.ID,
				Category:            t.Category,
				AssignedTeam:        t.AssignedTeam,
				Priority:            t.Priority,
				ResolutionHours:     t.ResolutionHours,
				HoursAboveThreshold: Round2(t.ResolutionHours - *threshold),
			})
		}
	}

	sort.Slice(report.Tickets, func(i, j int) bool {
		if report.Tickets[i].ResolutionHours != report.Tickets[j].ResolutionHours {
			return report.Tickets[i].ResolutionHours > report.Tickets[j].ResolutionHours
		}
		return report.Tickets[i].ID < report.Tickets[j].ID
	})
	return report
}
