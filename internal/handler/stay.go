package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

// ListStays handles GET /stays.
func (s *Server) ListStays(ctx context.Context, req gen.ListStaysRequestObject) (gen.ListStaysResponseObject, error) {
	list, err := s.listStays(ctx, domain.StayAny, req.Params.Plate, req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	return gen.ListStays200JSONResponse(list), nil
}

// ListOpenStays handles GET /stays/open.
func (s *Server) ListOpenStays(ctx context.Context, req gen.ListOpenStaysRequestObject) (gen.ListOpenStaysResponseObject, error) {
	list, err := s.listStays(ctx, domain.StayOpen, req.Params.Plate, req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	return gen.ListOpenStays200JSONResponse(list), nil
}

// ListClosedStays handles GET /stays/closed.
func (s *Server) ListClosedStays(ctx context.Context, req gen.ListClosedStaysRequestObject) (gen.ListClosedStaysResponseObject, error) {
	list, err := s.listStays(ctx, domain.StayClosed, req.Params.Plate, req.Params.Page, req.Params.Limit)
	if err != nil {
		return nil, err
	}
	return gen.ListClosedStays200JSONResponse(list), nil
}

func (s *Server) listStays(ctx context.Context, status domain.StayStatus, plate *string, page, limit *int) (gen.StayList, error) {
	params := domain.NewPaginationParams(page, limit)
	filter := domain.StayFilter{Plate: plateFilter(plate), Status: status}
	stays, total, err := s.stays.List(ctx, filter, params)
	if err != nil {
		return gen.StayList{}, err
	}
	return gen.StayList{Data: staysToResponse(stays), Pagination: pagination(params, total)}, nil
}

// ListPlateStays handles GET /plates/{plate}/stays.
// A plate that never entered answers 404.
func (s *Server) ListPlateStays(ctx context.Context, req gen.ListPlateStaysRequestObject) (gen.ListPlateStaysResponseObject, error) {
	stays, err := s.stays.ListByPlate(ctx, req.Plate)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListPlateStays422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("no stays for plate %s", strings.TrimSpace(req.Plate))
			return gen.ListPlateStays404JSONResponse(notFoundBody(msg)), nil
		}
		return nil, err
	}
	return gen.ListPlateStays200JSONResponse(staysToResponse(stays)), nil
}

// GetOpenStay handles GET /plates/{plate}/stays/open.
func (s *Server) GetOpenStay(ctx context.Context, req gen.GetOpenStayRequestObject) (gen.GetOpenStayResponseObject, error) {
	stay, err := s.stays.GetOpen(ctx, req.Plate)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetOpenStay422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("no open stay for plate %s", strings.TrimSpace(req.Plate))
			return gen.GetOpenStay404JSONResponse(notFoundBody(msg)), nil
		}
		return nil, err
	}
	return gen.GetOpenStay200JSONResponse(stayToResponse(stay)), nil
}

// stayToResponse converts a domain.Stay to the generated API type.
// ExitTime and DurationMinutes stay nil for an open stay and encode as null.
func stayToResponse(st domain.Stay) gen.Stay {
	return gen.Stay{
		Id:              st.ID,
		Plate:           st.Plate,
		EntryTime:       st.EntryTime,
		ExitTime:        st.ExitTime,
		DurationMinutes: st.DurationMinutes,
	}
}

func staysToResponse(stays []domain.Stay) []gen.Stay {
	data := make([]gen.Stay, len(stays))
	for i, st := range stays {
		data[i] = stayToResponse(st)
	}
	return data
}
