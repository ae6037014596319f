package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/pkg/util"
)

const header = "Ticket_ID,Created_Date,Resolved_Date,Priority,Category,Assigned_Team,Resolution_Hours,SLA_Target_Hours,SLA_Breached,Ticket_Age_Hours\n"

func TestParseCSVValidRows(t *testing.T) {
	input := header +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 18:00:00,High,Network,Infrastructure,10.0,24,False,100.5\n" +
		"TICKET-00002,2025-04-02 08:00:00,2025-04-03 14:00:00,High,Email,ServiceDesk,30.0,24,True,90.0\n"

	tickets, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	first := tickets[0]
	require.Equal(t, "TICKET-00001", first.ID)
	require.Equal(t, domain.PriorityHigh, first.Priority)
	require.Equal(t, "Network", first.Category)
	require.InDelta(t, 10.0, first.ResolutionHours, 0.001)
	require.Equal(t, 24, first.SLATargetHours)
	require.False(t, first.SLABreached)
	require.InDelta(t, 100.5, first.TicketAgeHours, 0.001)

	require.True(t, tickets[1].SLABreached)
}

func TestParseCSVDerivesRedundantFields(t *testing.T) {
	// No stored resolution/target/breach columns at all.
	input := "Ticket_ID,Created_Date,Resolved_Date,Priority,Category,Assigned_Team\n" +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 14:00:00,Critical,Security,CyberSecurity\n"

	tickets, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.InDelta(t, 6.0, tickets[0].ResolutionHours, 0.001)
	require.Equal(t, 4, tickets[0].SLATargetHours)
	require.True(t, tickets[0].SLABreached, "6h against the 4h Critical target")
}

func TestParseCSVRejectsResolvedBeforeCreated(t *testing.T) {
	input := header +
		"TICKET-00001,2025-04-02 08:00:00,2025-04-01 08:00:00,High,Network,Infrastructure,,,,\n"

	_, err := ParseCSV(strings.NewReader(input))
	requireValidationError(t, err, "resolved_at precedes created_at")
}

func TestParseCSVRejectsUnparseableTimestamp(t *testing.T) {
	input := header +
		"TICKET-00001,not-a-date,2025-04-01 08:00:00,High,Network,Infrastructure,,,,\n"

	_, err := ParseCSV(strings.NewReader(input))
	requireValidationError(t, err, "unparseable timestamp")
}

func TestParseCSVRejectsDivergentStoredHours(t *testing.T) {
	// Stored 99h against a 10h timestamp span.
	input := header +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 18:00:00,High,Network,Infrastructure,99.0,24,False,\n"

	_, err := ParseCSV(strings.NewReader(input))
	requireValidationError(t, err, "diverges")
}

func TestParseCSVRejectsInconsistentBreachFlag(t *testing.T) {
	input := header +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 18:00:00,High,Network,Infrastructure,10.0,24,True,\n"

	_, err := ParseCSV(strings.NewReader(input))
	requireValidationError(t, err, "disagrees")
}

func TestParseCSVUnknownPriorityNeedsStoredTarget(t *testing.T) {
	withTarget := header +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 18:00:00,P5,Network,Infrastructure,,48,,\n"
	tickets, err := ParseCSV(strings.NewReader(withTarget))
	require.NoError(t, err)
	require.Equal(t, 48, tickets[0].SLATargetHours)

	withoutTarget := header +
		"TICKET-00001,2025-04-01 08:00:00,2025-04-01 18:00:00,P5,Network,Infrastructure,,,,\n"
	_, err = ParseCSV(strings.NewReader(withoutTarget))
	requireValidationError(t, err, "unknown priority")
}

func TestParseCSVReportsEveryOffendingRow(t *testing.T) {
	input := header +
		"TICKET-00001,bad,2025-04-01 08:00:00,High,Network,Infrastructure,,,,\n" +
		"TICKET-00002,2025-04-01 08:00:00,2025-04-01 18:00:00,High,Network,Infrastructure,,,,\n" +
		",2025-04-01 08:00:00,2025-04-01 18:00:00,High,Network,Infrastructure,,,,\n"

	_, err := ParseCSV(strings.NewReader(input))
	require.Error(t, err)

	var de *util.DomainError
	require.True(t, errors.As(err, &de))
	rows, ok := de.Details["rows"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0]["row"])
	require.Equal(t, 4, rows[1]["row"])
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	input := "Ticket_ID,Created_Date,Resolved_Date,Priority,Category\n"

	_, err := ParseCSV(strings.NewReader(input))
	requireValidationError(t, err, "missing required column")
}

func requireValidationError(t *testing.T, err error, fragment string) {
	t.Helper()
	require.Error(t, err)
	var de *util.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "VALIDATION_FAILED", de.Code)
	if fragment != "" {
		found := strings.Contains(de.Error(), fragment)
		if !found {
			for _, row := range rowDetails(de) {
				if strings.Contains(row, fragment) {
					found = true
					break
				}
			}
		}
		require.True(t, found, "expected %q in validation error %v / %v", fragment, de, de.Details)
	}
}

func rowDetails(de *util.DomainError) []string {
	rows, ok := de.Details["rows"].([]map[string]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if msg, ok := row["error"].(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
