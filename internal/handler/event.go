package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

// RecordEvent handles POST /events.
// Answers 201 with the event and the resulting stay, 409 when an entry is
// recorded for a parked plate, 404 when an exit has no open stay, and 422
// for an empty plate or unknown kind.
func (s *Server) RecordEvent(ctx context.Context, req gen.RecordEventRequestObject) (gen.RecordEventResponseObject, error) {
	rec, err := s.events.Record(ctx, req.Body.Plate, req.Body.Kind)
	if err != nil {
		plate := strings.TrimSpace(req.Body.Plate)
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.RecordEvent422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.RecordEvent409JSONResponse(conflictBody(fmt.Sprintf("plate %s already has an open stay", plate))), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.RecordEvent404JSONResponse(notFoundBody(fmt.Sprintf("no open stay for plate %s", plate))), nil
		}
		return nil, err
	}

	return gen.RecordEvent201JSONResponse{
		Event: eventToResponse(rec.Event),
		Stay:  stayToResponse(rec.Stay),
	}, nil
}

// ListEvents handles GET /events.
// Supports ?plate=, ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListEvents(ctx context.Context, req gen.ListEventsRequestObject) (gen.ListEventsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	events, total, err := s.events.ListEvents(ctx, plateFilter(req.Params.Plate), params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Event, len(events))
	for i, e := range events {
		data[i] = eventToResponse(e)
	}
	return gen.ListEvents200JSONResponse{
		Data:       data,
		Pagination: pagination(params, total),
	}, nil
}

func eventToResponse(e domain.Event) gen.Event {
	return gen.Event{
		Id:        e.ID,
		Plate:     e.Plate,
		Kind:      gen.EventKind(e.Kind),
		Timestamp: e.Timestamp,
		StayId:    e.StayID,
		Accepted:  e.Accepted,
	}
}

// plateFilter turns the optional ?plate= into the service's "" for no filter.
func plateFilter(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func pagination(p domain.PaginationParams, total int64) gen.Pagination {
	return gen.Pagination{Page: p.Page, Limit: p.Limit, Total: int(total)}
}
