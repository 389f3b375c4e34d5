// Package handler implements the HTTP handlers for the paid-parking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (event.go, stay.go, invoice.go,
// health.go) but share the Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config gen/cfg.yaml ../../spec/openapi.yaml

import (
	"context"
	"log/slog"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

// EventRecorder defines the gate-event operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type EventRecorder interface {
	Record(ctx context.Context, plate, kind string) (domain.Recording, error)
	ListEvents(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error)
}

// StayQuerier defines the read-only stay queries.
type StayQuerier interface {
	List(ctx context.Context, filter domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error)
	ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error)
	GetOpen(ctx context.Context, plate string) (domain.Stay, error)
}

// InvoiceGenerator defines the invoicing operations.
type InvoiceGenerator interface {
	Generate(ctx context.Context, plate string) (domain.Invoice, bool, error)
	List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it via Handler, which mounts gen.NewStrictHandlerWithOptions on chi.
type Server struct {
	events   EventRecorder
	stays    StayQuerier
	invoices InvoiceGenerator
	db       Pinger
	log      *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// Any dependency may be nil in tests that do not exercise it; db == nil
// makes /readyz report ready.
func NewServer(events EventRecorder, stays StayQuerier, invoices InvoiceGenerator, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{events: events, stays: stays, invoices: invoices, db: db, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}
