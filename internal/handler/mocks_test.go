package handler

import (
	"context"
	"io"

	"pico-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) OpenTable(ctx context.Context, tableID int) (model.CartResponse, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).(model.CartResponse), args.Error(1)
}

func (m *MockOrderService) CloseTable(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockOrderService) Cart(ctx context.Context) model.CartResponse {
	args := m.Called(ctx)
	return args.Get(0).(model.CartResponse)
}

func (m *MockOrderService) AddItem(ctx context.Context, itemID string) (model.CartResponse, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(model.CartResponse), args.Error(1)
}

func (m *MockOrderService) UpdateQuantity(ctx context.Context, itemID string, delta int) (model.CartResponse, error) {
	args := m.Called(ctx, itemID, delta)
	return args.Get(0).(model.CartResponse), args.Error(1)
}

func (m *MockOrderService) SetNote(ctx context.Context, itemID, note string) (model.CartResponse, error) {
	args := m.Called(ctx, itemID, note)
	return args.Get(0).(model.CartResponse), args.Error(1)
}

func (m *MockOrderService) Checkout(ctx context.Context) (model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) []model.Order {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) Refund(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) WriteReceipt(ctx context.Context, id uuid.UUID, w io.Writer) error {
	args := m.Called(ctx, id, w)
	if text := args.String(1); text != "" {
		_, _ = io.WriteString(w, text)
	}
	return args.Error(0)
}

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, req model.MenuItemRequest) (model.MenuItem, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id string, req model.MenuItemRequest) (model.MenuItem, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFloorService is a mock implementation of FloorService.
type MockFloorService struct {
	mock.Mock
}

func (m *MockFloorService) List(ctx context.Context) []model.Table {
	args := m.Called(ctx)
	return args.Get(0).([]model.Table)
}

func (m *MockFloorService) Add(ctx context.Context) model.Table {
	args := m.Called(ctx)
	return args.Get(0).(model.Table)
}

func (m *MockFloorService) Update(ctx context.Context, id int, req model.TableUpdateRequest) (model.Table, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(model.Table), args.Error(1)
}

func (m *MockFloorService) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionService is a mock implementation of SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, account string) (model.StoreProfile, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.StoreProfile), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSessionService) Current(ctx context.Context) (model.StoreProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.StoreProfile), args.Error(1)
}

func (m *MockSessionService) UpdateProfile(ctx context.Context, profile model.StoreProfile) (model.StoreProfile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(model.StoreProfile), args.Error(1)
}

// MockReportService is a mock implementation of ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context) model.Summary {
	args := m.Called(ctx)
	return args.Get(0).(model.Summary)
}

func (m *MockReportService) Insight(ctx context.Context) (model.Insight, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Insight), args.Error(1)
}

func (m *MockReportService) Analysis(ctx context.Context) (model.Analysis, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Analysis), args.Error(1)
}

func (m *MockReportService) Forecast(ctx context.Context) (model.Forecast, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Forecast), args.Error(1)
}

func (m *MockReportService) Credits(ctx context.Context) model.CreditsResponse {
	args := m.Called(ctx)
	return args.Get(0).(model.CreditsResponse)
}
