package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/analytics"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/config"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/observability"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/pkg/util"
)

// TicketSource supplies the full ticket collection for an analysis run.
type TicketSource interface {
	FetchAll(ctx context.Context) ([]domain.Ticket, error)
}

// Cache stores serialized report payloads. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// ReportService holds the immutable per-run ticket snapshot and answers
// every reporting query from it. Each computation is a pure function of the
// snapshot plus explicit parameters; results are cached per dataset version,
// so a refreshed dataset naturally invalidates all cached reports.
type ReportService struct {
	source  TicketSource
	cache   Cache
	params  config.AnalyticsConfig
	logger  *zap.Logger
	metrics *observability.Metrics

	mu       sync.RWMutex
	snapshot []domain.Ticket
	version  string
}

// ReportDependencies bundles collaborators for the report service.
type ReportDependencies struct {
	Source  TicketSource
	Cache   Cache
	Params  config.AnalyticsConfig
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// NewReportService constructs the service with an empty snapshot.
func NewReportService(deps ReportDependencies) *ReportService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		source:  deps.Source,
		cache:   deps.Cache,
		params:  deps.Params,
		logger:  logger,
		metrics: deps.Metrics,
	}
}

// Refresh reloads the snapshot from the ticket source.
func (s *ReportService) Refresh(ctx context.Context) error {
	if s.source == nil {
		return util.NewConflict("no ticket source configured", nil)
	}
	tickets, err := s.source.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.LoadCollection(tickets)
	return nil
}

// LoadCollection installs a new immutable snapshot and returns its version.
func (s *ReportService) LoadCollection(tickets []domain.Ticket) string {
	version := uuid.NewString()
	s.mu.Lock()
	s.snapshot = tickets
	s.version = version
	s.mu.Unlock()

	s.logger.Info("ticket snapshot loaded",
		zap.Int("tickets", len(tickets)),
		zap.String("version", version),
	)
	return version
}

// Version returns the current dataset version, empty before any load.
func (s *ReportService) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// TicketCount returns the snapshot size.
func (s *ReportService) TicketCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot)
}

func (s *ReportService) current() ([]domain.Ticket, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.version
}

// SLASummary reports whole-dataset SLA compliance.
func (s *ReportService) SLASummary(ctx context.Context) (analytics.SLAComplianceSummary, error) {
	return cached(ctx, s, "sla_summary", func(tickets []domain.Ticket) (analytics.SLAComplianceSummary, error) {
		return analytics.SLASummary(tickets), nil
	})
}

// ResolutionStats reports resolution-time statistics grouped by dimension.
func (s *ReportService) ResolutionStats(ctx context.Context, by string) ([]analytics.ResolutionStatsRow, error) {
	key, err := groupKey(by)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, "resolution_stats:"+by, func(tickets []domain.Ticket) ([]analytics.ResolutionStatsRow, error) {
		return analytics.ResolutionStats(tickets, key), nil
	})
}

// BreachRates reports breach/compliance rates grouped by dimension.
func (s *ReportService) BreachRates(ctx context.Context, by string) ([]analytics.BreachRateRow, error) {
	key, err := groupKey(by)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s, "breach_rates:"+by, func(tickets []domain.Ticket) ([]analytics.BreachRateRow, error) {
		return analytics.BreachRates(tickets, key), nil
	})
}

// VolumeTrend reports the monthly volume trend with growth rates.
func (s *ReportService) VolumeTrend(ctx context.Context) ([]analytics.MonthlyVolumeRow, error) {
	return cached(ctx, s, "volume_trend", func(tickets []domain.Ticket) ([]analytics.MonthlyVolumeRow, error) {
		return analytics.MonthlyVolume(tickets), nil
	})
}

// TopCategories reports the category ranking; n <= 0 uses the configured
// default.
func (s *ReportService) TopCategories(ctx context.Context, n int) ([]analytics.CategoryRankRow, error) {
	if n <= 0 {
		n = s.params.TopCategories
	}
	name := "top_categories:" + itoa(n)
	return cached(ctx, s, name, func(tickets []domain.Ticket) ([]analytics.CategoryRankRow, error) {
		return analytics.TopCategories(tickets, n), nil
	})
}

// TeamCategoryMatrix reports the team by category cross-tabulation.
func (s *ReportService) TeamCategoryMatrix(ctx context.Context) ([]analytics.CrossTabRow, error) {
	return cached(ctx, s, "team_category_matrix", func(tickets []domain.Ticket) ([]analytics.CrossTabRow, error) {
		return analytics.TeamCategoryMatrix(tickets), nil
	})
}

// Outliers reports tickets above the percentile threshold; percentile <= 0
// uses the configured default.
func (s *ReportService) Outliers(ctx context.Context, percentile float64) (analytics.OutlierReport, error) {
	if percentile <= 0 {
		percentile = s.params.OutlierPercentile
	}
	name := "outliers:" + ftoa(percentile)
	return cached(ctx, s, name, func(tickets []domain.Ticket) (analytics.OutlierReport, error) {
		return analytics.Outliers(tickets, percentile), nil
	})
}

// QuickResolution reports quick-resolution efficiency by (category, team).
func (s *ReportService) QuickResolution(ctx context.Context, maxHours float64) ([]analytics.EfficiencyRow, error) {
	if maxHours <= 0 {
		maxHours = s.params.QuickResolutionHours
	}
	name := "quick_resolution:" + ftoa(maxHours)
	return cached(ctx, s, name, func(tickets []domain.Ticket) ([]analytics.EfficiencyRow, error) {
		return analytics.QuickResolutionEfficiency(tickets, maxHours), nil
	})
}

// RecurringSignatures reports disproportionately frequent (category,
// priority) pairs.
func (s *ReportService) RecurringSignatures(ctx context.Context, threshold float64) ([]analytics.SignatureRow, error) {
	if threshold <= 0 {
		threshold = s.params.RecurrenceThreshold
	}
	name := "recurring_signatures:" + ftoa(threshold)
	return cached(ctx, s, name, func(tickets []domain.Ticket) ([]analytics.SignatureRow, error) {
		return analytics.RecurringSignatures(tickets, threshold), nil
	})
}

// BreachShareByTeam reports breach concentration across teams.
func (s *ReportService) BreachShareByTeam(ctx context.Context) ([]analytics.TeamBreachShareRow, error) {
	return cached(ctx, s, "breach_share_by_team", func(tickets []domain.Ticket) ([]analytics.TeamBreachShareRow, error) {
		return analytics.BreachShareByTeam(tickets), nil
	})
}

// RepeatIncidents reports repeat-incident concentration per category.
func (s *ReportService) RepeatIncidents(ctx context.Context) ([]analytics.RepeatIncidentRow, error) {
	return cached(ctx, s, "repeat_incidents", func(tickets []domain.Ticket) ([]analytics.RepeatIncidentRow, error) {
		return analytics.RepeatIncidentRateByCategory(tickets), nil
	})
}

// RecurringIssues reports the most frequent recurring issue signatures.
func (s *ReportService) RecurringIssues(ctx context.Context, topN int) ([]analytics.RecurringIssueRow, error) {
	if topN <= 0 {
		topN = 15
	}
	name := "recurring_issues:" + itoa(topN)
	return cached(ctx, s, name, func(tickets []domain.Ticket) ([]analytics.RecurringIssueRow, error) {
		return analytics.RecurringIssues(tickets, topN), nil
	})
}

// Escalations reports escalation concentration by team.
func (s *ReportService) Escalations(ctx context.Context) ([]analytics.EscalationRow, error) {
	return cached(ctx, s, "escalations", func(tickets []domain.Ticket) ([]analytics.EscalationRow, error) {
		return analytics.EscalationsByTeam(tickets), nil
	})
}

// WeeklyVolume reports the weekly actuals series.
func (s *ReportService) WeeklyVolume(ctx context.Context) ([]analytics.WeeklyVolumeRow, error) {
	return cached(ctx, s, "weekly_volume", func(tickets []domain.Ticket) ([]analytics.WeeklyVolumeRow, error) {
		return analytics.WeeklyVolume(tickets), nil
	})
}

// Forecast projects future weekly volume from the current snapshot.
func (s *ReportService) Forecast(ctx context.Context, window, horizon int) ([]analytics.ForecastRow, error) {
	if window <= 0 {
		window = s.params.ForecastWindowWeeks
	}
	if horizon <= 0 {
		horizon = s.params.ForecastHorizonWeeks
	}
	name := "forecast:" + itoa(window) + ":" + itoa(horizon)
	return cached(ctx, s, name, func(tickets []domain.Ticket) ([]analytics.ForecastRow, error) {
		weekly := analytics.WeeklyVolume(tickets)
		rows, err := analytics.ForecastVolume(weekly, window, horizon)
		if err != nil {
			return nil, util.NewConflict(err.Error(), nil)
		}
		return rows, nil
	})
}

// WarmCache computes the standard report set once so the first readers hit
// cached results.
func (s *ReportService) WarmCache(ctx context.Context) {
	type step struct {
		name string
		run  func() error
	}
	steps := []step{
		{"sla_summary", func() error { _, err := s.SLASummary(ctx); return err }},
		{"resolution_stats", func() error { _, err := s.ResolutionStats(ctx, "category"); return err }},
		{"breach_rates", func() error { _, err := s.BreachRates(ctx, "team"); return err }},
		{"volume_trend", func() error { _, err := s.VolumeTrend(ctx); return err }},
		{"top_categories", func() error { _, err := s.TopCategories(ctx, 0); return err }},
		{"team_category_matrix", func() error { _, err := s.TeamCategoryMatrix(ctx); return err }},
		{"outliers", func() error { _, err := s.Outliers(ctx, 0); return err }},
		{"quick_resolution", func() error { _, err := s.QuickResolution(ctx, 0); return err }},
		{"recurring_signatures", func() error { _, err := s.RecurringSignatures(ctx, 0); return err }},
		{"breach_share_by_team", func() error { _, err := s.BreachShareByTeam(ctx); return err }},
	}
	for _, st := range steps {
		if err := st.run(); err != nil {
			s.logger.Warn("cache warm failed", zap.String("report", st.name), zap.Error(err))
		}
	}
}

// cached runs compute over the current snapshot, reading and writing the
// version-scoped cache around it.
func cached[T any](ctx context.Context, s *ReportService, name string, compute func([]domain.Ticket) (T, error)) (T, error) {
	snapshot, version := s.current()
	key := "report:" + version + ":" + name

	var zero T
	if s.cache != nil && version != "" {
		payload, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("report cache read failed", zap.String("report", name), zap.Error(err))
		} else if ok {
			var result T
			if err := json.Unmarshal(payload, &result); err == nil {
				return result, nil
			}
		}
	}

	start := time.Now()
	result, err := compute(snapshot)
	if err != nil {
		return zero, err
	}
	s.metrics.RecordReport(name, time.Since(start))

	if s.cache != nil && version != "" {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.params.CacheTTL()); err != nil {
				s.logger.Warn("report cache write failed", zap.String("report", name), zap.Error(err))
			}
		}
	}
	return result, nil
}

func groupKey(by string) (analytics.KeyFunc, error) {
	switch by {
	case "category":
		return analytics.ByCategory, nil
	case "team":
		return analytics.ByTeam, nil
	case "priority":
		return analytics.ByPriority, nil
	}
	return nil, util.NewValidationError("unknown grouping dimension", map[string]any{
		"by":      by,
		"allowed": []string{"category", "team", "priority"},
	})
}
