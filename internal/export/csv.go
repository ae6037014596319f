package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/analytics"
)

// Table is a rendered aggregate ready for CSV output.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteTable writes one aggregate table to <dir>/<name>.csv, creating the
// directory as needed.
func WriteTable(dir string, table Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, table.Name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return "", err
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}

// naValue renders a not-applicable statistic in CSV output, keeping it
// distinguishable from a real zero.
const naValue = "NA"

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func p2(v *float64) string {
	if v == nil {
		return naValue
	}
	return f2(*v)
}

func itoa(v int) string { return strconv.Itoa(v) }

// SLASummaryTable renders the compliance rollup.
func SLASummaryTable(summary analytics.SLAComplianceSummary) Table {
	return Table{
		Name:   "sla_compliance_summary",
		Header: []string{"total_tickets", "compliant_tickets", "breached_tickets", "compliance_rate_percent", "breach_rate_percent"},
		Rows: [][]string{{
			itoa(summary.Total), itoa(summary.Compliant), itoa(summary.Breached),
			p2(summary.CompliancePct), p2(summary.BreachPct),
		}},
	}
}

// ResolutionStatsTable renders per-group resolution statistics.
func ResolutionStatsTable(name, keyColumn string, rows []analytics.ResolutionStatsRow) Table {
	table := Table{
		Name: name,
		Header: []string{keyColumn, "total_tickets", "avg_resolution_hours", "avg_resolution_days",
			"median_resolution_hours", "min_resolution_hours", "max_resolution_hours", "std_resolution_hours"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Key, itoa(row.Count), f2(row.MeanHours), f2(row.MeanDays),
			f2(row.MedianHours), f2(row.MinHours), f2(row.MaxHours), p2(row.StdDevHours),
		})
	}
	return table
}

// BreachRatesTable renders per-group breach/compliance rates.
func BreachRatesTable(name, keyColumn string, rows []analytics.BreachRateRow) Table {
	table := Table{
		Name:   name,
		Header: []string{keyColumn, "total_tickets", "breached_tickets", "compliant_tickets", "breach_rate_percent", "compliance_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Key, itoa(row.Total), itoa(row.Breached), itoa(row.Compliant),
			p2(row.BreachPct), p2(row.CompliancePct),
		})
	}
	return table
}

// MonthlyVolumeTable renders the volume trend.
func MonthlyVolumeTable(rows []analytics.MonthlyVolumeRow) Table {
	table := Table{
		Name: "ticket_volume_by_month",
		Header: []string{"month", "tickets_created", "critical_tickets", "high_tickets", "medium_tickets",
			"low_tickets", "other_tickets", "breached_tickets", "growth_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Month, itoa(row.Total), itoa(row.Critical), itoa(row.High), itoa(row.Medium),
			itoa(row.Low), itoa(row.Other), itoa(row.Breached), p2(row.GrowthPct),
		})
	}
	return table
}

// TopCategoriesTable renders the category ranking.
func TopCategoriesTable(rows []analytics.CategoryRankRow) Table {
	table := Table{
		Name:   "top_categories",
		Header: []string{"category", "total_tickets", "percent_of_total", "breach_rate_percent", "avg_resolution_hours", "avg_resolution_days"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Category, itoa(row.Count), p2(row.PctOfTotal), p2(row.BreachPct), f2(row.MeanHours), f2(row.MeanDays),
		})
	}
	return table
}

// CrossTabTable renders the team by category matrix.
func CrossTabTable(rows []analytics.CrossTabRow) Table {
	table := Table{
		Name:   "team_category_matrix",
		Header: []string{"assigned_team", "category", "total_tickets", "avg_resolution_hours", "breach_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Team, row.Category, itoa(row.Count), f2(row.MeanHours), p2(row.BreachPct),
		})
	}
	return table
}

// OutliersTable renders the percentile outlier report.
func OutliersTable(report analytics.OutlierReport) Table {
	table := Table{
		Name: "resolution_outliers",
		Header: []string{"id", "category", "assigned_team", "priority", "resolution_hours",
			"threshold_hours", "hours_above_threshold"},
	}
	for _, t := range report.Tickets {
		table.Rows = append(table.Rows, []string{
			t.ID, t.Category, t.AssignedTeam, string(t.Priority), f2(t.ResolutionHours),
			p2(report.ThresholdHours), f2(t.HoursAboveThreshold),
		})
	}
	return table
}

// EfficiencyTable renders quick-resolution efficiency.
func EfficiencyTable(rows []analytics.EfficiencyRow) Table {
	table := Table{
		Name: "quick_resolution_efficiency",
		Header: []string{"category", "assigned_team", "total_tickets", "quick_tickets",
			"quick_rate_percent", "quick_compliant_tickets", "avg_quick_resolution_hours"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Category, row.Team, itoa(row.Total), itoa(row.QuickCount),
			p2(row.QuickPct), itoa(row.QuickCompliant), p2(row.MeanQuickHours),
		})
	}
	return table
}

// SignaturesTable renders recurring (category, priority) signatures.
func SignaturesTable(rows []analytics.SignatureRow) Table {
	table := Table{
		Name:   "recurring_signatures",
		Header: []string{"category", "priority", "incident_count", "share_of_total_percent", "breach_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Category, string(row.Priority), itoa(row.Count), p2(row.ShareOfPct), p2(row.BreachPct),
		})
	}
	return table
}

// BreachShareTable renders breach concentration by team.
func BreachShareTable(rows []analytics.TeamBreachShareRow) Table {
	table := Table{
		Name:   "breach_share_by_team",
		Header: []string{"assigned_team", "total_tickets", "breached_tickets", "share_of_breaches_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Team, itoa(row.Total), itoa(row.Breached), p2(row.SharePct),
		})
	}
	return table
}

// RepeatIncidentsTable renders repeat-incident concentration per category.
func RepeatIncidentsTable(rows []analytics.RepeatIncidentRow) Table {
	table := Table{
		Name: "repeat_incident_rate_by_category",
		Header: []string{"category", "total_tickets", "recurring_tickets", "unique_issue_signatures",
			"recurring_issue_signatures", "repeat_incident_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Category, itoa(row.TotalTickets), itoa(row.RecurringTickets),
			itoa(row.UniqueSignatures), itoa(row.RecurringSignatures), p2(row.RepeatRatePct),
		})
	}
	return table
}

// RecurringIssuesTable renders the most frequent recurring issues.
func RecurringIssuesTable(rows []analytics.RecurringIssueRow) Table {
	table := Table{
		Name: "most_frequent_recurring_issues",
		Header: []string{"issue_signature", "category", "priority", "assigned_team",
			"incident_count", "breached_count", "breach_rate_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Signature, row.Category, string(row.Priority), row.Team,
			itoa(row.IncidentCount), itoa(row.BreachedCount), p2(row.BreachPct),
		})
	}
	return table
}

// EscalationsTable renders escalation concentration by team.
func EscalationsTable(rows []analytics.EscalationRow) Table {
	table := Table{
		Name: "escalations_by_team",
		Header: []string{"assigned_team", "total_tickets", "escalations", "sla_breaches",
			"escalation_rate_percent", "share_of_total_escalations_percent"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Team, itoa(row.TotalTickets), itoa(row.Escalations), itoa(row.SLABreaches),
			p2(row.EscalationPct), p2(row.SharePct),
		})
	}
	return table
}

// ForecastTable renders the weekly volume forecast.
func ForecastTable(rows []analytics.ForecastRow) Table {
	table := Table{
		Name: "ticket_volume_forecast",
		Header: []string{"week_start_date", "forecast_tickets", "lower_bound", "upper_bound",
			"method", "baseline_avg"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.WeekStart.Format("2006-01-02"), itoa(row.Forecast), itoa(row.LowerBound),
			itoa(row.UpperBound), row.Method, f2(row.Baseline),
		})
	}
	return table
}

// WeeklyVolumeTable renders the weekly actuals that feed the forecast.
func WeeklyVolumeTable(rows []analytics.WeeklyVolumeRow) Table {
	table := Table{
		Name:   "weekly_ticket_volume",
		Header: []string{"week_start_date", "actual_tickets"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{row.WeekStart.Format("2006-01-02"), itoa(row.Count)})
	}
	return table
}

// WriteAll writes every table and returns the paths written.
func WriteAll(dir string, tables []Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		path, err := WriteTable(dir, table)
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", table.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
