// Package app assembles the ledger, services, handlers and router into a
// single http.Handler.
package app

import (
	"context"
	"net/http"
	"time"

	"pico-pos/internal/catalog"
	"pico-pos/internal/events"
	"pico-pos/internal/handler"
	"pico-pos/internal/insight"
	"pico-pos/internal/ledger"
	"pico-pos/internal/router"
	"pico-pos/internal/service"

	"github.com/rs/zerolog"
)

// Options carries the collaborators and limits the application is built with.
type Options struct {
	Insight      insight.Client
	Credits      int
	AITimeout    time.Duration
	Publisher    events.Publisher
	EventTimeout time.Duration
	DemoMarker   string
	LedgerOpts   []ledger.Option
}

// App is a fully wired POS backend.
type App struct {
	Handler http.Handler
	Ledger  *ledger.Ledger
	Insight *insight.Service
}

// New builds the application state from seed.
func New(seed *catalog.Seed, opts Options, logger zerolog.Logger) *App {
	if opts.Insight == nil {
		opts.Insight = insight.Unavailable{}
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NewNopPublisher()
	}

	l := ledger.New(seed.MenuItems(), seed.FloorPlan(), opts.LedgerOpts...)
	analyst := insight.NewService(opts.Insight, opts.Credits, opts.AITimeout, logger)

	sessionService := service.NewSessionService(l, analyst, seed.Profiles, opts.DemoMarker, logger)
	menuService := service.NewMenuService(l, logger)
	floorService := service.NewFloorService(l, logger)
	orderService := service.NewOrderService(l, opts.Publisher, opts.EventTimeout, logger)
	reportService := service.NewReportService(l, analyst, logger)

	handlers := router.Handlers{
		Session: handler.NewSessionHandler(sessionService, logger),
		Menu:    handler.NewMenuHandler(menuService, logger),
		Floor:   handler.NewFloorHandler(floorService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		Report:  handler.NewReportHandler(reportService, logger),
	}

	sessionActive := func() bool {
		_, err := sessionService.Current(context.Background())
		return err == nil
	}

	return &App{
		Handler: router.New(handlers, sessionActive, logger),
		Ledger:  l,
		Insight: analyst,
	}
}
