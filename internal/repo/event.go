package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

// EventRepo defines the persistence operations for the append-only event log.
// There is deliberately no Update or Delete.
type EventRepo interface {
	// Create appends an event and returns it with its id populated.
	Create(ctx context.Context, ev domain.Event) (domain.Event, error)

	// List returns one page of events, newest first, and the total count.
	// An empty plate matches every plate.
	List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error)
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `id, plate, kind, timestamp, stay_id, accepted`

func (r *pgEventRepo) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	const q = `
		INSERT INTO events (plate, kind, timestamp, stay_id, accepted)
		VALUES (@plate, @kind, @timestamp, @stay_id, @accepted)
		RETURNING ` + eventColumns

	args := pgx.NamedArgs{
		"plate":     ev.Plate,
		"kind":      string(ev.Kind),
		"timestamp": ev.Timestamp,
		"stay_id":   ev.StayID, // nil becomes NULL
		"accepted":  ev.Accepted,
	}

	row := conn(ctx, r.db).QueryRow(ctx, q, args)
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	const where = ` WHERE (@plate = '' OR plate = @plate)`
	const q = `SELECT ` + eventColumns + ` FROM events` + where + `
		ORDER BY id DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{"plate": plate, "limit": p.Limit, "offset": p.Offset()}

	c := conn(ctx, r.db)
	total, err := count(ctx, c, `SELECT COUNT(*) FROM events`+where, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.List: %w", err)
	}

	rows, err := c.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.List: %w", err)
	}
	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.EventRepo.List: %w", err)
	}
	return events, total, nil
}

// scanEvent maps a single database row into a domain.Event.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		ev   domain.Event
		kind string
	)
	err := s.Scan(&ev.ID, &ev.Plate, &kind, &ev.Timestamp, &ev.StayID, &ev.Accepted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}
	ev.Kind = domain.EventKind(kind)
	return ev, nil
}
