package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/analytics"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
)

// TicketRepository persists the denormalized ticket table and answers the
// core reporting queries in SQL. The SQL aggregates mirror the engine's row
// shapes so callers can compare the two surfaces directly.
type TicketRepository interface {
	ReplaceAll(ctx context.Context, tickets []domain.Ticket) error
	FetchAll(ctx context.Context) ([]domain.Ticket, error)
	Count(ctx context.Context) (int64, error)
	SLASummary(ctx context.Context) (analytics.SLAComplianceSummary, error)
	MonthlyVolume(ctx context.Context) ([]analytics.MonthlyVolumeRow, error)
	BreachRatesByTeam(ctx context.Context) ([]analytics.BreachRateRow, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// ReplaceAll swaps the stored dataset for the given collection inside one
// transaction, using CopyFrom for the bulk insert.
func (r *ticketRepository) ReplaceAll(ctx context.Context, tickets []domain.Ticket) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `TRUNCATE TABLE tickets`); err != nil {
		return fmt.Errorf("truncate tickets: %w", err)
	}

	rows := make([][]any, len(tickets))
	for i, t := range tickets {
		rows[i] = []any{
			t.ID, t.CreatedAt, t.ResolvedAt, string(t.Priority), t.Category,
			t.AssignedTeam, t.ResolutionHours, t.SLATargetHours, t.SLABreached, t.TicketAgeHours,
		}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"tickets"},
		[]string{"ticket_id", "created_at", "resolved_at", "priority", "category",
			"assigned_team", "resolution_hours", "sla_target_hours", "sla_breached", "ticket_age_hours"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy tickets: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *ticketRepository) FetchAll(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT ticket_id, created_at, resolved_at, priority, category, assigned_team,
               resolution_hours, sla_target_hours, sla_breached, ticket_age_hours
        FROM tickets
        ORDER BY ticket_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		var priority string
		if err := rows.Scan(
			&t.ID, &t.CreatedAt, &t.ResolvedAt, &priority, &t.Category, &t.AssignedTeam,
			&t.ResolutionHours, &t.SLATargetHours, &t.SLABreached, &t.TicketAgeHours,
		); err != nil {
			return nil, err
		}
		t.Priority = domain.Priority(priority)
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count)
	return count, err
}

// SLASummary is the SQL rendition of the whole-dataset compliance rollup.
func (r *ticketRepository) SLASummary(ctx context.Context) (analytics.SLAComplianceSummary, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE NOT sla_breached),
               COUNT(*) FILTER (WHERE sla_breached)
        FROM tickets`

	var s analytics.SLAComplianceSummary
	if err := r.pool.QueryRow(ctx, query).Scan(&s.Total, &s.Compliant, &s.Breached); err != nil {
		return s, err
	}
	if s.Total > 0 {
		s.CompliancePct = analytics.Float(analytics.Round2(float64(s.Compliant) / float64(s.Total) * 100))
		s.BreachPct = analytics.Float(analytics.Round2(float64(s.Breached) / float64(s.Total) * 100))
	}
	return s, nil
}

// MonthlyVolume is the SQL rendition of the volume trend; the growth rate is
// derived from the ordered buckets after scanning.
func (r *ticketRepository) MonthlyVolume(ctx context.Context) ([]analytics.MonthlyVolumeRow, error) {
	const query = `
        SELECT to_char(created_at, 'YYYY-MM') AS month,
               COUNT(*),
               COUNT(*) FILTER (WHERE priority = 'Critical'),
               COUNT(*) FILTER (WHERE priority = 'High'),
               COUNT(*) FILTER (WHERE priority = 'Medium'),
               COUNT(*) FILTER (WHERE priority = 'Low'),
               COUNT(*) FILTER (WHERE priority NOT IN ('Critical','High','Medium','Low')),
               COUNT(*) FILTER (WHERE sla_breached)
        FROM tickets
        GROUP BY month
        ORDER BY month`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []analytics.MonthlyVolumeRow
	for rows.Next() {
		var row analytics.MonthlyVolumeRow
		if err := rows.Scan(&row.Month, &row.Total, &row.Critical, &row.High,
			&row.Medium, &row.Low, &row.Other, &row.Breached); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := 1; i < len(result); i++ {
		prev := result[i-1].Total
		if prev == 0 {
			continue
		}
		result[i].GrowthPct = analytics.Float(analytics.Round2(float64(result[i].Total-prev) / float64(prev) * 100))
	}
	return result, nil
}

// BreachRatesByTeam is the SQL rendition of the per-team breach rates.
func (r *ticketRepository) BreachRatesByTeam(ctx context.Context) ([]analytics.BreachRateRow, error) {
	const query = `
        SELECT assigned_team,
               COUNT(*),
               COUNT(*) FILTER (WHERE sla_breached),
               COUNT(*) FILTER (WHERE NOT sla_breached)
        FROM tickets
        GROUP BY assigned_team
        ORDER BY ROUND(COUNT(*) FILTER (WHERE sla_breached)::numeric / COUNT(*) * 100, 2) DESC,
                 COUNT(*) DESC, assigned_team`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []analytics.BreachRateRow
	for rows.Next() {
		var row analytics.BreachRateRow
		if err := rows.Scan(&row.Key, &row.Total, &row.Breached, &row.Compliant); err != nil {
			return nil, err
		}
		if row.Total > 0 {
			row.BreachPct = analytics.Float(analytics.Round2(float64(row.Breached) / float64(row.Total) * 100))
			row.CompliancePct = analytics.Float(analytics.Round2(float64(row.Compliant) / float64(row.Total) * 100))
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
