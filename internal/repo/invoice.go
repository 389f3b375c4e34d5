package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

// InvoiceRepo defines the persistence operations for Invoices.
type InvoiceRepo interface {
	// Create inserts an invoice and returns it with its id populated.
	Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)

	// LatestByStay returns the most recent invoice issued for a stay.
	// Returns domain.ErrNotFound if the stay was never invoiced.
	LatestByStay(ctx context.Context, stayID int64) (domain.Invoice, error)

	// List returns one page of invoices, newest first, and the total count.
	// An empty plate matches every plate.
	List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error)
}

// pgInvoiceRepo is the Postgres implementation of InvoiceRepo.
type pgInvoiceRepo struct {
	db db
}

// NewInvoiceRepo constructs an InvoiceRepo backed by the provided db connection.
func NewInvoiceRepo(db db) InvoiceRepo {
	return &pgInvoiceRepo{db: db}
}

const invoiceColumns = `id, stay_id, plate, duration_minutes, rate_per_minute, total, generated_at`

func (r *pgInvoiceRepo) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	const q = `
		INSERT INTO invoices (stay_id, plate, duration_minutes, rate_per_minute, total, generated_at)
		VALUES (@stay_id, @plate, @duration_minutes, @rate_per_minute, @total, @generated_at)
		RETURNING ` + invoiceColumns

	args := pgx.NamedArgs{
		"stay_id":          inv.StayID,
		"plate":            inv.Plate,
		"duration_minutes": inv.DurationMinutes,
		"rate_per_minute":  inv.RatePerMinute,
		"total":            inv.Total,
		"generated_at":     inv.GeneratedAt,
	}

	row := conn(ctx, r.db).QueryRow(ctx, q, args)
	result, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("repo.InvoiceRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgInvoiceRepo) LatestByStay(ctx context.Context, stayID int64) (domain.Invoice, error) {
	const q = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE stay_id = @stay_id
		ORDER BY id DESC
		LIMIT 1`

	row := conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"stay_id": stayID})
	result, err := scanInvoice(row)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("repo.InvoiceRepo.LatestByStay: %w", err)
	}
	return result, nil
}

func (r *pgInvoiceRepo) List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	const where = ` WHERE (@plate = '' OR plate = @plate)`
	const q = `SELECT ` + invoiceColumns + ` FROM invoices` + where + `
		ORDER BY id DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"plate": plate, "limit": p.Limit, "offset": p.Offset()}

	c := conn(ctx, r.db)
	total, err := count(ctx, c, `SELECT COUNT(*) FROM invoices`+where, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.List: %w", err)
	}

	rows, err := c.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.List: %w", err)
	}
	invoices, err := collect(rows, scanInvoice)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.InvoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func scanInvoice(s scanner) (domain.Invoice, error) {
	var inv domain.Invoice
	err := s.Scan(&inv.ID, &inv.StayID, &inv.Plate, &inv.DurationMinutes, &inv.RatePerMinute, &inv.Total, &inv.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrNotFound
		}
		return domain.Invoice{}, err
	}
	return inv, nil
}
