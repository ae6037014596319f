package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func monthOf(year int, month time.Month, n int, priority domain.Priority) []domain.Ticket {
	created := time.Date(year, month, 10, 9, 0, 0, 0, time.UTC)
	tickets := make([]domain.Ticket, n)
	for i := range tickets {
		tickets[i] = tkAt(fmt.Sprintf("TICKET-%d%02d-%04d", year, month, i), created, priority, "Network", "Infrastructure", 2)
	}
	return tickets
}

func TestMonthlyVolumeGrowthRates(t *testing.T) {
	var tickets []domain.Ticket
	tickets = append(tickets, monthOf(2025, time.April, 100, domain.PriorityMedium)...)
	tickets = append(tickets, monthOf(2025, time.May, 110, domain.PriorityMedium)...)
	tickets = append(tickets, monthOf(2025, time.June, 99, domain.PriorityMedium)...)

	rows := MonthlyVolume(tickets)

	require.Len(t, rows, 3)
	require.Equal(t, []string{"2025-04", "2025-05", "2025-06"}, []string{rows[0].Month, rows[1].Month, rows[2].Month})
	require.Equal(t, []int{100, 110, 99}, []int{rows[0].Total, rows[1].Total, rows[2].Total})

	require.Nil(t, rows[0].GrowthPct, "first bucket growth is not applicable")
	require.InDelta(t, 10.00, *rows[1].GrowthPct, 0.001)
	require.InDelta(t, -10.00, *rows[2].GrowthPct, 0.001)
}

func TestMonthlyVolumePrioritySubcounts(t *testing.T) {
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		tkAt("TICKET-00001", created, domain.PriorityCritical, "Security", "CyberSecurity", 1),
		tkAt("TICKET-00002", created, domain.PriorityHigh, "Network", "Infrastructure", 2),
		tkAt("TICKET-00003", created, domain.PriorityMedium, "Software", "Applications", 3),
		tkAt("TICKET-00004", created, domain.PriorityLow, "Email", "ServiceDesk", 4),
		tkAt("TICKET-00005", created, domain.Priority("Unplanned"), "Email", "ServiceDesk", 4),
	}

	rows := MonthlyVolume(tickets)

	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, 5, row.Total)
	require.Equal(t, 1, row.Critical)
	require.Equal(t, 1, row.High)
	require.Equal(t, 1, row.Medium)
	require.Equal(t, 1, row.Low)
	require.Equal(t, 1, row.Other, "unrecognized priority must land in Other, never be dropped")
	require.Equal(t, row.Total, row.Critical+row.High+row.Medium+row.Low+row.Other)
}

func TestMonthlyVolumeEmptySet(t *testing.T) {
	require.Empty(t, MonthlyVolume(nil))
}

func TestMonthlyVolumeChronological(t *testing.T) {
	var tickets []domain.Ticket
	tickets = append(tickets, monthOf(2025, time.June, 3, domain.PriorityLow)...)
	tickets = append(tickets, monthOf(2024, time.December, 2, domain.PriorityLow)...)
	tickets = append(tickets, monthOf(2025, time.January, 4, domain.PriorityLow)...)

	rows := MonthlyVolume(tickets)

	require.Equal(t, "2024-12", rows[0].Month)
	require.Equal(t, "2025-01", rows[1].Month)
	require.Equal(t, "2025-06", rows[2].Month)
}
