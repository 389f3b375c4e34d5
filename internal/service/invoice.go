package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/paid-parking/backend/internal/clock"
	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/repo"
)

// InvoiceService prices the most recent closed stay of a plate.
type InvoiceService struct {
	tx       Transactor
	stays    repo.StayRepo
	invoices repo.InvoiceRepo
	clock    clock.Clock
	rate     int64
	pub      Publisher
	log      *slog.Logger

	dedupe bool
}

// InvoiceOption customises an InvoiceService.
type InvoiceOption func(*InvoiceService)

// WithInvoicePublisher sends invoice.generated notifications to pub.
func WithInvoicePublisher(pub Publisher) InvoiceOption {
	return func(s *InvoiceService) { s.pub = pub }
}

// WithInvoiceLogger overrides slog.Default.
func WithInvoiceLogger(log *slog.Logger) InvoiceOption {
	return func(s *InvoiceService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDedupe makes Generate return the existing invoice of a stay instead of
// issuing another one. Off by default: every call issues a new invoice.
func WithDedupe(on bool) InvoiceOption {
	return func(s *InvoiceService) { s.dedupe = on }
}

// NewInvoiceService constructs an InvoiceService charging rate currency units
// per minute. A non-positive rate falls back to domain.DefaultRatePerMinute.
func NewInvoiceService(tx Transactor, stays repo.StayRepo, invoices repo.InvoiceRepo, clk clock.Clock, rate int64, opts ...InvoiceOption) *InvoiceService {
	if rate <= 0 {
		rate = domain.DefaultRatePerMinute
	}
	s := &InvoiceService{
		tx:       tx,
		stays:    stays,
		invoices: invoices,
		clock:    clk,
		rate:     rate,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the configured price per minute.
func (s *InvoiceService) Rate() int64 {
	return s.rate
}

// Generate issues an invoice for the latest closed stay of plate.
// created is false only when dedupe is on and the stay was already invoiced.
// Returns domain.ErrNotFound if the plate has no closed stay.
func (s *InvoiceService) Generate(ctx context.Context, plate string) (inv domain.Invoice, created bool, err error) {
	plate, err = normalizePlate(plate)
	if err != nil {
		return domain.Invoice{}, false, fmt.Errorf("service.InvoiceService.Generate: %w", err)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		stay, err := s.stays.LatestClosedByPlate(ctx, plate)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no closed stay for plate %s: %w", plate, domain.ErrNotFound)
			}
			return err
		}

		if s.dedupe {
			existing, err := s.invoices.LatestByStay(ctx, stay.ID)
			if err == nil {
				inv = existing
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}

		inv, err = s.invoices.Create(ctx, domain.NewInvoice(stay, s.rate, s.clock.Now()))
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return domain.Invoice{}, false, fmt.Errorf("service.InvoiceService.Generate: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "invoice generated", "plate", plate, "invoice_id", inv.ID,
			"stay_id", inv.StayID, "total", inv.Total)
		publish(ctx, s.pub, s.log, TopicInvoiceGenerated, inv)
	}
	return inv, created, nil
}

// List returns one page of invoices, newest first. An empty plate lists every plate.
func (s *InvoiceService) List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	invoices, total, err := s.invoices.List(ctx, plate, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.InvoiceService.List: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, total, nil
}
