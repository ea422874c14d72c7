package service

import (
	"context"

	"pico-pos/internal/catalog"
	"pico-pos/internal/ledger"
	"pico-pos/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event model.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockAnalyst is a mock implementation of Analyst.
type MockAnalyst struct {
	mock.Mock
}

func (m *MockAnalyst) Run(ctx context.Context, stats model.SalesStats) (model.Insight, error) {
	args := m.Called(ctx, stats)
	return args.Get(0).(model.Insight), args.Error(1)
}

func (m *MockAnalyst) Analyze(ctx context.Context, stats model.SalesStats) (string, error) {
	args := m.Called(ctx, stats)
	return args.String(0), args.Error(1)
}

func (m *MockAnalyst) Forecast(ctx context.Context, stats model.SalesStats) ([]model.ForecastPoint, error) {
	args := m.Called(ctx, stats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastPoint), args.Error(1)
}

func (m *MockAnalyst) Credits() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockAnalyst) Reset() {
	m.Called()
}

func newTestLedger() *ledger.Ledger {
	seed := catalog.DefaultSeed()
	return ledger.New(seed.MenuItems(), seed.FloorPlan())
}
