package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

// StayRepo defines the persistence operations for Stays.
type StayRepo interface {
	// Create opens a new stay for plate at entry.
	// Returns domain.ErrConflict if the plate already has an open stay.
	Create(ctx context.Context, plate string, entry time.Time) (domain.Stay, error)

	// GetOpenByPlate returns the open stay for plate without locking it.
	// Returns domain.ErrNotFound if there is none.
	GetOpenByPlate(ctx context.Context, plate string) (domain.Stay, error)

	// LockOpenByPlate is GetOpenByPlate with a row lock held until the
	// surrounding transaction ends, so concurrent exits for a plate serialize.
	LockOpenByPlate(ctx context.Context, plate string) (domain.Stay, error)

	// Close persists ExitTime and DurationMinutes of an open stay in one
	// statement. Returns domain.ErrNotFound if the stay is no longer open.
	Close(ctx context.Context, stay domain.Stay) (domain.Stay, error)

	// LatestClosedByPlate returns the closed stay with the highest id for plate,
	// locking it when called inside a transaction so concurrent invoicing of
	// the same stay serializes. Returns domain.ErrNotFound if there is none.
	LatestClosedByPlate(ctx context.Context, plate string) (domain.Stay, error)

	// List returns one page of stays matching filter, newest first, and the total count.
	List(ctx context.Context, filter domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error)

	// ListByPlate returns every stay of a plate, newest first.
	ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error)
}

// pgStayRepo is the Postgres implementation of StayRepo.
type pgStayRepo struct {
	db db
}

// NewStayRepo constructs a StayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStayRepo(db db) StayRepo {
	return &pgStayRepo{db: db}
}

const stayColumns = `id, plate, entry_time, exit_time, duration_minutes`

// Create relies on the stays_one_open_per_plate partial unique index, so two
// concurrent entries for the same plate cannot both succeed.
func (r *pgStayRepo) Create(ctx context.Context, plate string, entry time.Time) (domain.Stay, error) {
	const q = `
		INSERT INTO stays (plate, entry_time)
		VALUES (@plate, @entry_time)
		RETURNING ` + stayColumns

	row := conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"plate": plate, "entry_time": entry})
	result, err := scanStay(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Stay{}, fmt.Errorf("repo.StayRepo.Create: plate %s already has an open stay: %w", plate, domain.ErrConflict)
		}
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.Create: %w", err)
	}
	return result, nil
}

const openStayQuery = `
		SELECT ` + stayColumns + `
		FROM stays
		WHERE plate = @plate AND exit_time IS NULL`

func (r *pgStayRepo) GetOpenByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	row := conn(ctx, r.db).QueryRow(ctx, openStayQuery, pgx.NamedArgs{"plate": plate})
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.GetOpenByPlate: %w", err)
	}
	return result, nil
}

func (r *pgStayRepo) LockOpenByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	row := conn(ctx, r.db).QueryRow(ctx, openStayQuery+`
		FOR UPDATE`, pgx.NamedArgs{"plate": plate})
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.LockOpenByPlate: %w", err)
	}
	return result, nil
}

func (r *pgStayRepo) Close(ctx context.Context, stay domain.Stay) (domain.Stay, error) {
	const q = `
		UPDATE stays
		SET exit_time        = @exit_time,
		    duration_minutes = @duration_minutes
		WHERE id = @id AND exit_time IS NULL
		RETURNING ` + stayColumns

	args := pgx.NamedArgs{
		"id":               stay.ID,
		"exit_time":        stay.ExitTime,
		"duration_minutes": stay.DurationMinutes,
	}

	row := conn(ctx, r.db).QueryRow(ctx, q, args)
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.Close: %w", err)
	}
	return result, nil
}

func (r *pgStayRepo) LatestClosedByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM stays
		WHERE plate = @plate AND exit_time IS NOT NULL
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE`

	row := conn(ctx, r.db).QueryRow(ctx, q, pgx.NamedArgs{"plate": plate})
	result, err := scanStay(row)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("repo.StayRepo.LatestClosedByPlate: %w", err)
	}
	return result, nil
}

// stayFilterClause matches every stay when plate and status are empty.
const stayFilterClause = `
		WHERE (@plate = '' OR plate = @plate)
		  AND (@status = ''
		       OR (@status = 'open' AND exit_time IS NULL)
		       OR (@status = 'closed' AND exit_time IS NOT NULL))`

func (r *pgStayRepo) List(ctx context.Context, filter domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error) {
	const q = `SELECT ` + stayColumns + ` FROM stays` + stayFilterClause + `
		ORDER BY id DESC
		LIMIT @limit OFFSET @offset`
	const countQ = `SELECT COUNT(*) FROM stays` + stayFilterClause

	args := pgx.NamedArgs{
		"plate":  filter.Plate,
		"status": string(filter.Status),
		"limit":  p.Limit,
		"offset": p.Offset(),
	}

	c := conn(ctx, r.db)
	total, err := count(ctx, c, countQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StayRepo.List: %w", err)
	}

	rows, err := c.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	stays, err := collect(rows, scanStay)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	return stays, total, nil
}

func (r *pgStayRepo) ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM stays
		WHERE plate = @plate
		ORDER BY id DESC`

	rows, err := conn(ctx, r.db).Query(ctx, q, pgx.NamedArgs{"plate": plate})
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.ListByPlate: %w", err)
	}
	stays, err := collect(rows, scanStay)
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.ListByPlate: %w", err)
	}
	return stays, nil
}

// scanStay maps a single database row into a domain.Stay.
// NULL exit_time and duration_minutes scan into nil pointers.
func scanStay(s scanner) (domain.Stay, error) {
	var st domain.Stay
	err := s.Scan(&st.ID, &st.Plate, &st.EntryTime, &st.ExitTime, &st.DurationMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Stay{}, domain.ErrNotFound
		}
		return domain.Stay{}, err
	}
	return st, nil
}
