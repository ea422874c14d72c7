package service

import (
	"context"
	"io"

	"pico-pos/internal/model"

	"github.com/google/uuid"
)

// SessionService defines operations for the store session and its profile.
type SessionService interface {
	// Login starts a session with the profile preset matching the account.
	Login(ctx context.Context, account string) (model.StoreProfile, error)

	// Logout ends the session and resets the order log, cart and floor.
	Logout(ctx context.Context)

	// Current returns the active profile, or ErrNotLoggedIn.
	Current(ctx context.Context) (model.StoreProfile, error)

	// UpdateProfile replaces the active profile.
	UpdateProfile(ctx context.Context, profile model.StoreProfile) (model.StoreProfile, error)
}

// MenuService defines operations for catalogue management.
type MenuService interface {
	// List returns the catalogue, optionally restricted to one category.
	List(ctx context.Context, category string) ([]model.MenuItem, error)

	Create(ctx context.Context, req model.MenuItemRequest) (model.MenuItem, error)
	Update(ctx context.Context, id string, req model.MenuItemRequest) (model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// FloorService defines operations for the floor plan.
type FloorService interface {
	List(ctx context.Context) []model.Table
	Add(ctx context.Context) model.Table
	Update(ctx context.Context, id int, req model.TableUpdateRequest) (model.Table, error)
	Remove(ctx context.Context, id int) error
}

// OrderService defines operations for the cart and the order log.
type OrderService interface {
	// OpenTable starts serving a table, abandoning any other open cart.
	OpenTable(ctx context.Context, tableID int) (model.CartResponse, error)

	// CloseTable abandons the open cart.
	CloseTable(ctx context.Context)

	Cart(ctx context.Context) model.CartResponse
	AddItem(ctx context.Context, itemID string) (model.CartResponse, error)
	UpdateQuantity(ctx context.Context, itemID string, delta int) (model.CartResponse, error)
	SetNote(ctx context.Context, itemID, note string) (model.CartResponse, error)

	// Checkout commits the open cart as an order.
	Checkout(ctx context.Context) (model.Order, error)

	// List returns the order log, newest first.
	List(ctx context.Context) []model.Order

	GetByID(ctx context.Context, id uuid.UUID) (model.Order, error)
	Refund(ctx context.Context, id uuid.UUID) (model.Order, error)

	// WriteReceipt renders the printable receipt for an order.
	WriteReceipt(ctx context.Context, id uuid.UUID, w io.Writer) error
}

// ReportService defines the dashboard operations.
type ReportService interface {
	Summary(ctx context.Context) model.Summary

	// Insight runs the AI analysis and forecast over completed orders.
	Insight(ctx context.Context) (model.Insight, error)

	// Analysis and Forecast run one half of Insight for a single credit.
	Analysis(ctx context.Context) (model.Analysis, error)
	Forecast(ctx context.Context) (model.Forecast, error)

	Credits(ctx context.Context) model.CreditsResponse
}

// Analyst produces AI insight from sales statistics.
type Analyst interface {
	Run(ctx context.Context, stats model.SalesStats) (model.Insight, error)
	Analyze(ctx context.Context, stats model.SalesStats) (string, error)
	Forecast(ctx context.Context, stats model.SalesStats) ([]model.ForecastPoint, error)
	Credits() int

	// Reset restores the per-session credit allowance.
	Reset()
}
