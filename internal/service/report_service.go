package service

import (
	"context"

	"pico-pos/internal/ledger"
	"pico-pos/internal/model"
	"pico-pos/internal/report"

	"github.com/rs/zerolog"
)

// reportService implements ReportService.
type reportService struct {
	ledger  *ledger.Ledger
	analyst Analyst
	logger  zerolog.Logger
}

// NewReportService creates a new dashboard service.
func NewReportService(l *ledger.Ledger, analyst Analyst, logger zerolog.Logger) ReportService {
	return &reportService{
		ledger:  l,
		analyst: analyst,
		logger:  logger.With().Str("service", "report").Logger(),
	}
}

func (s *reportService) Summary(ctx context.Context) model.Summary {
	menu, orders := s.ledger.Snapshot()
	return report.Summarize(orders, menu)
}

// Insight works on a snapshot taken before the AI calls, so the ledger is
// never locked while the backend is answering.
func (s *reportService) Insight(ctx context.Context) (model.Insight, error) {
	stats := s.stats()

	result, err := s.analyst.Run(ctx, stats)
	if err != nil {
		s.logger.Warn().Err(err).Msg("insight refused")
		return model.Insight{}, err
	}

	s.logger.Info().
		Int("order_count", stats.OrderCount).
		Int("forecast_days", len(result.Forecast)).
		Int("credits_left", result.CreditsLeft).
		Msg("insight generated")

	return result, nil
}

func (s *reportService) Analysis(ctx context.Context) (model.Analysis, error) {
	text, err := s.analyst.Analyze(ctx, s.stats())
	if err != nil {
		s.logger.Warn().Err(err).Msg("analysis refused")
		return model.Analysis{}, err
	}

	return model.Analysis{Report: text, CreditsLeft: s.analyst.Credits()}, nil
}

func (s *reportService) Forecast(ctx context.Context) (model.Forecast, error) {
	points, err := s.analyst.Forecast(ctx, s.stats())
	if err != nil {
		s.logger.Warn().Err(err).Msg("forecast refused")
		return model.Forecast{}, err
	}

	s.logger.Info().Int("forecast_days", len(points)).Msg("forecast generated")
	return model.Forecast{Forecast: points, CreditsLeft: s.analyst.Credits()}, nil
}

// stats covers completed orders only.
func (s *reportService) stats() model.SalesStats {
	menu, orders := s.ledger.Snapshot()
	return report.Stats(report.Completed(orders), menu)
}

func (s *reportService) Credits(ctx context.Context) model.CreditsResponse {
	return model.CreditsResponse{Credits: s.analyst.Credits()}
}
