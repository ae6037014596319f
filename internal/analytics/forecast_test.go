package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

func weekOf(start time.Time, n int) []domain.Ticket {
	tickets := make([]domain.Ticket, n)
	for i := range tickets {
		tickets[i] = tkAt(fmt.Sprintf("TICKET-%s-%03d", start.Format("20060102"), i),
			start.Add(time.Duration(i)*time.Hour), domain.PriorityMedium, "Network", "Infrastructure", 5)
	}
	return tickets
}

func TestWeeklyVolumeBucketsByMondayStart(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC) // a Monday
	var tickets []domain.Ticket
	tickets = append(tickets, weekOf(monday, 3)...)
	// Wednesday of the same week lands in the same bucket.
	tickets = append(tickets, weekOf(monday.AddDate(0, 0, 2), 2)...)
	tickets = append(tickets, weekOf(monday.AddDate(0, 0, 7), 4)...)

	rows := WeeklyVolume(tickets)

	require.Len(t, rows, 2)
	require.Equal(t, monday, rows[0].WeekStart)
	require.Equal(t, 5, rows[0].Count)
	require.Equal(t, monday.AddDate(0, 0, 7), rows[1].WeekStart)
	require.Equal(t, 4, rows[1].Count)
}

func TestWeeklyVolumeFillsGaps(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	var tickets []domain.Ticket
	tickets = append(tickets, weekOf(monday, 2)...)
	tickets = append(tickets, weekOf(monday.AddDate(0, 0, 21), 3)...)

	rows := WeeklyVolume(tickets)

	require.Len(t, rows, 4, "interior weeks are zero-filled")
	require.Equal(t, 0, rows[1].Count)
	require.Equal(t, 0, rows[2].Count)
}

func TestForecastVolumeMovingAverage(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	weekly := []WeeklyVolumeRow{
		{WeekStart: monday, Count: 10},
		{WeekStart: monday.AddDate(0, 0, 7), Count: 10},
		{WeekStart: monday.AddDate(0, 0, 14), Count: 10},
		{WeekStart: monday.AddDate(0, 0, 21), Count: 10},
	}

	rows, err := ForecastVolume(weekly, 4, 4)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for i, row := range rows {
		require.Equal(t, monday.AddDate(0, 0, 7*(4+i)), row.WeekStart)
		require.Equal(t, 10, row.Forecast)
		require.Equal(t, 10, row.LowerBound, "constant series has zero variability")
		require.Equal(t, 10, row.UpperBound)
		require.Equal(t, "4-week moving average baseline", row.Method)
		require.InDelta(t, 10.00, row.Baseline, 0.001)
	}
}

func TestForecastVolumeUsesTrailingWindow(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	weekly := []WeeklyVolumeRow{
		{WeekStart: monday, Count: 100},
		{WeekStart: monday.AddDate(0, 0, 7), Count: 20},
		{WeekStart: monday.AddDate(0, 0, 14), Count: 20},
	}

	rows, err := ForecastVolume(weekly, 2, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 20, rows[0].Forecast, "baseline averages only the trailing window")
}

func TestForecastVolumeEmptySeries(t *testing.T) {
	_, err := ForecastVolume(nil, 4, 4)
	require.Error(t, err)
}

func TestForecastVolumeLowerBoundFloorsAtZero(t *testing.T) {
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
	weekly := []WeeklyVolumeRow{
		{WeekStart: monday, Count: 40},
		{WeekStart: monday.AddDate(0, 0, 7), Count: 0},
	}

	rows, err := ForecastVolume(weekly, 2, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, rows[0].LowerBound, 0)
}
