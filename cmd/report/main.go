package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/analytics"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/config"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/domain"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/export"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/generator"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/loader"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/observability"
)

// The report command runs the full analysis once: load or generate a ticket
// collection, compute every aggregate, and write the results as CSV tables.
func main() {
	var (
		inPath  = flag.String("in", "", "CSV ticket export to analyze; empty generates a synthetic dataset")
		outDir  = flag.String("out", "reports", "directory for the CSV report tables")
		count   = flag.Int("count", 2000, "synthetic dataset size when generating")
		seed    = flag.Int64("seed", 42, "random seed when generating")
		window  = flag.Int("window", 4, "forecast moving-average window in weeks")
		horizon = flag.Int("horizon", 4, "forecast horizon in weeks")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	var tickets []domain.Ticket
	if *inPath != "" {
		tickets, err = loader.LoadFile(*inPath)
		if err != nil {
			logger.Fatal("csv load failed", zap.String("path", *inPath), zap.Error(err))
		}
		logger.Info("dataset loaded", zap.String("path", *inPath), zap.Int("tickets", len(tickets)))
	} else {
		genCfg := generator.Defaults()
		genCfg.Count = *count
		genCfg.Seed = *seed
		tickets, err = generator.Generate(genCfg)
		if err != nil {
			logger.Fatal("dataset generation failed", zap.Error(err))
		}
		logger.Info("dataset generated", zap.Int("tickets", len(tickets)), zap.Int64("seed", *seed))
	}

	params := cfg.Analytics
	tables := []export.Table{
		export.SLASummaryTable(analytics.SLASummary(tickets)),
		export.ResolutionStatsTable("resolution_stats_by_category", "Category", analytics.ResolutionStats(tickets, analytics.ByCategory)),
		export.ResolutionStatsTable("resolution_stats_by_team", "Assigned_Team", analytics.ResolutionStats(tickets, analytics.ByTeam)),
		export.ResolutionStatsTable("resolution_stats_by_priority", "Priority", analytics.ResolutionStats(tickets, analytics.ByPriority)),
		export.BreachRatesTable("breach_rates_by_team", "Assigned_Team", analytics.BreachRates(tickets, analytics.ByTeam)),
		export.BreachRatesTable("breach_rates_by_priority", "Priority", analytics.BreachRates(tickets, analytics.ByPriority)),
		export.MonthlyVolumeTable(analytics.MonthlyVolume(tickets)),
		export.TopCategoriesTable(analytics.TopCategories(tickets, params.TopCategories)),
		export.CrossTabTable(analytics.TeamCategoryMatrix(tickets)),
		export.OutliersTable(analytics.Outliers(tickets, params.OutlierPercentile)),
		export.EfficiencyTable(analytics.QuickResolutionEfficiency(tickets, params.QuickResolutionHours)),
		export.SignaturesTable(analytics.RecurringSignatures(tickets, params.RecurrenceThreshold)),
		export.BreachShareTable(analytics.BreachShareByTeam(tickets)),
		export.RepeatIncidentsTable(analytics.RepeatIncidentRateByCategory(tickets)),
		export.RecurringIssuesTable(analytics.RecurringIssues(tickets, 15)),
		export.EscalationsTable(analytics.EscalationsByTeam(tickets)),
	}

	weekly := analytics.WeeklyVolume(tickets)
	tables = append(tables, export.WeeklyVolumeTable(weekly))
	forecast, err := analytics.ForecastVolume(weekly, *window, *horizon)
	if err != nil {
		logger.Warn("forecast skipped", zap.Error(err))
	} else {
		tables = append(tables, export.ForecastTable(forecast))
	}

	paths, err := export.WriteAll(*outDir, tables)
	if err != nil {
		logger.Fatal("report export failed", zap.Error(err))
	}
	logger.Info("reports written", zap.Int("tables", len(paths)), zap.String("dir", *outDir))
}
