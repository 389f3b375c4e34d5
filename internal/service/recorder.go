package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/paid-parking/backend/internal/clock"
	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/repo"
)

// RecorderService records gate events. It is the only writer of stay
// transitions: an entry opens a stay, an exit closes the plate's open stay.
type RecorderService struct {
	tx     Transactor
	events repo.EventRepo
	stays  repo.StayRepo
	clock  clock.Clock
	pub    Publisher
	log    *slog.Logger

	recordRejected bool
}

// RecorderOption customises a RecorderService.
type RecorderOption func(*RecorderService)

// WithRecorderPublisher sends stay.opened / stay.closed notifications to pub.
func WithRecorderPublisher(pub Publisher) RecorderOption {
	return func(s *RecorderService) { s.pub = pub }
}

// WithRecorderLogger overrides slog.Default.
func WithRecorderLogger(log *slog.Logger) RecorderOption {
	return func(s *RecorderService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRejectedEvents controls whether an entry or exit that is refused
// (conflict / no open stay) still leaves a row in the event log, flagged
// accepted=false. Enabled by default.
func WithRejectedEvents(on bool) RecorderOption {
	return func(s *RecorderService) { s.recordRejected = on }
}

// NewRecorderService constructs a RecorderService backed by the provided repos.
// tx must share its connection with events and stays.
func NewRecorderService(tx Transactor, events repo.EventRepo, stays repo.StayRepo, clk clock.Clock, opts ...RecorderOption) *RecorderService {
	s := &RecorderService{
		tx:             tx,
		events:         events,
		stays:          stays,
		clock:          clk,
		log:            slog.Default(),
		recordRejected: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record applies one gate event for plate.
// Returns domain.ErrValidation for an empty plate or a kind other than entry/exit,
// domain.ErrConflict for an entry while a stay is open, and domain.ErrNotFound
// for an exit without an open stay. The stay change and its event row commit together.
func (s *RecorderService) Record(ctx context.Context, plate, kind string) (domain.Recording, error) {
	plate, err := normalizePlate(plate)
	if err != nil {
		return domain.Recording{}, fmt.Errorf("service.RecorderService.Record: %w", err)
	}
	k, err := domain.ParseKind(kind)
	if err != nil {
		return domain.Recording{}, fmt.Errorf("service.RecorderService.Record: %w", err)
	}

	now := s.clock.Now()
	var rec domain.Recording

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var stay domain.Stay
		var err error
		switch k {
		case domain.KindEntry:
			stay, err = s.stays.Create(ctx, plate, now)
		case domain.KindExit:
			stay, err = s.closeOpenStay(ctx, plate, now)
		}
		if err != nil {
			return err
		}

		stayID := stay.ID
		ev, err := s.events.Create(ctx, domain.Event{
			Plate:     plate,
			Kind:      k,
			Timestamp: now,
			StayID:    &stayID,
			Accepted:  true,
		})
		if err != nil {
			return err
		}
		rec = domain.Recording{Event: ev, Stay: stay}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			s.rejected(ctx, plate, k, now, err)
		}
		return domain.Recording{}, fmt.Errorf("service.RecorderService.Record: %w", err)
	}

	if k == domain.KindEntry {
		s.log.InfoContext(ctx, "stay opened", "plate", plate, "stay_id", rec.Stay.ID)
		publish(ctx, s.pub, s.log, TopicStayOpened, rec.Stay)
	} else {
		s.log.InfoContext(ctx, "stay closed", "plate", plate, "stay_id", rec.Stay.ID,
			"duration_minutes", *rec.Stay.DurationMinutes)
		publish(ctx, s.pub, s.log, TopicStayClosed, rec.Stay)
	}
	return rec, nil
}

// closeOpenStay locks the plate's open stay and sets its exit time and
// duration in a single update.
func (s *RecorderService) closeOpenStay(ctx context.Context, plate string, now time.Time) (domain.Stay, error) {
	open, err := s.stays.LockOpenByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Stay{}, fmt.Errorf("no open stay for plate %s: %w", plate, domain.ErrNotFound)
		}
		return domain.Stay{}, err
	}
	return s.stays.Close(ctx, open.Close(now))
}

// rejected logs a refused transition and, when enabled, appends it to the
// event log outside the rolled-back transaction.
func (s *RecorderService) rejected(ctx context.Context, plate string, k domain.EventKind, now time.Time, cause error) {
	s.log.WarnContext(ctx, "gate event rejected", "plate", plate, "kind", k, "reason", cause.Error())
	if !s.recordRejected {
		return
	}
	if _, err := s.events.Create(ctx, domain.Event{Plate: plate, Kind: k, Timestamp: now}); err != nil {
		s.log.ErrorContext(ctx, "rejected event not recorded", "plate", plate, "kind", k, "error", err)
	}
}

// ListEvents returns one page of the event log, newest first.
// An empty plate lists every plate.
func (s *RecorderService) ListEvents(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	events, total, err := s.events.List(ctx, plate, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.RecorderService.ListEvents: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, total, nil
}
