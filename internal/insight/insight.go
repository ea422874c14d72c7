// Package insight produces AI-written business reports and revenue
// forecasts from sales statistics, metered by a credit counter.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"pico-pos/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultCredits is the allowance a fresh service starts with.
	DefaultCredits = 50

	// FallbackReport is returned when the analysis call fails.
	FallbackReport = "AI Analysis service is currently unavailable."
)

// ErrUnavailable is returned by the Unavailable client.
var ErrUnavailable = errors.New("insight: no AI backend configured")

// Client talks to a text generation backend.
type Client interface {
	// Analyze returns a Markdown business report for stats.
	Analyze(ctx context.Context, stats model.SalesStats) (string, error)

	// Forecast returns a JSON array of {day, revenue} for the next seven days.
	Forecast(ctx context.Context, stats model.SalesStats) (string, error)
}

// Unavailable is a Client that always fails, used when no API key is set.
type Unavailable struct{}

func (Unavailable) Analyze(context.Context, model.SalesStats) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Forecast(context.Context, model.SalesStats) (string, error) {
	return "", ErrUnavailable
}

// Service meters calls to a Client. Every call spends a credit before the
// backend answers and failed calls are not refunded.
type Service struct {
	client  Client
	timeout time.Duration
	logger  zerolog.Logger

	mu        sync.Mutex
	credits   int
	allowance int
}

// NewService creates a Service with the given credit allowance. A zero
// timeout leaves calls bounded only by the caller's context.
func NewService(client Client, credits int, timeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		client:    client,
		credits:   credits,
		allowance: credits,
		timeout:   timeout,
		logger:    logger.With().Str("component", "insight").Logger(),
	}
}

// Credits returns the remaining allowance.
func (s *Service) Credits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credits
}

// Reset restores the allowance the service was created with. Credits belong
// to a store session and start over with the next one.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits = s.allowance
}

// Analyze spends one credit and returns the report, or FallbackReport if the
// backend fails.
func (s *Service) Analyze(ctx context.Context, stats model.SalesStats) (string, error) {
	if err := s.spend(1); err != nil {
		return "", err
	}
	return s.analyze(ctx, stats), nil
}

// Forecast spends one credit and returns the parsed forecast. Backend
// failures and malformed replies yield an empty forecast.
func (s *Service) Forecast(ctx context.Context, stats model.SalesStats) ([]model.ForecastPoint, error) {
	if err := s.spend(1); err != nil {
		return nil, err
	}
	return s.forecast(ctx, stats), nil
}

// Run spends two credits up front and performs the analysis and the
// forecast concurrently.
func (s *Service) Run(ctx context.Context, stats model.SalesStats) (model.Insight, error) {
	if err := s.spend(2); err != nil {
		return model.Insight{}, err
	}

	var out model.Insight
	var g errgroup.Group

	g.Go(func() error {
		out.Report = s.analyze(ctx, stats)
		return nil
	})
	g.Go(func() error {
		out.Forecast = s.forecast(ctx, stats)
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Insight{}, err
	}

	out.CreditsLeft = s.Credits()
	return out, nil
}

func (s *Service) spend(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credits < n {
		s.logger.Warn().
			Int("credits", s.credits).
			Int("required", n).
			Msg("insufficient AI credits")
		return model.ErrInsufficientCredits
	}
	s.credits -= n
	return nil
}

func (s *Service) analyze(ctx context.Context, stats model.SalesStats) string {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.client.Analyze(ctx, stats)
	if err != nil {
		s.logger.Error().Err(err).Msg("analysis failed")
		return FallbackReport
	}
	return text
}

func (s *Service) forecast(ctx context.Context, stats model.SalesStats) []model.ForecastPoint {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.Forecast(ctx, stats)
	if err != nil {
		s.logger.Error().Err(err).Msg("forecast failed")
		return []model.ForecastPoint{}
	}

	points, err := ParseForecast(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("forecast reply was not valid JSON")
		return []model.ForecastPoint{}
	}
	return points
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ParseForecast decodes a JSON array of forecast points. Blank input is an
// empty forecast.
func ParseForecast(raw string) ([]model.ForecastPoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []model.ForecastPoint{}, nil
	}

	var points []model.ForecastPoint
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		return nil, err
	}
	if points == nil {
		points = []model.ForecastPoint{}
	}
	return points, nil
}
