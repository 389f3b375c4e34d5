package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/repo"
)

// StayService is the read-only query surface over stays.
// All stay mutation happens through RecorderService.
type StayService struct {
	stays repo.StayRepo
}

// NewStayService constructs a StayService backed by the provided StayRepo.
func NewStayService(stays repo.StayRepo) *StayService {
	return &StayService{stays: stays}
}

// List returns one page of stays matching filter, newest first, and the total count.
// Returns domain.ErrValidation for an unknown status.
func (s *StayService) List(ctx context.Context, filter domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error) {
	switch filter.Status {
	case domain.StayAny, domain.StayOpen, domain.StayClosed:
	default:
		return nil, 0, fmt.Errorf("service.StayService.List: %w: unknown status %q", domain.ErrValidation, filter.Status)
	}

	stays, total, err := s.stays.List(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.StayService.List: %w", err)
	}
	if stays == nil {
		stays = []domain.Stay{}
	}
	return stays, total, nil
}

// ListByPlate returns every stay recorded for plate, newest first.
// Returns domain.ErrNotFound if the plate has never entered.
func (s *StayService) ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error) {
	plate, err := normalizePlate(plate)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.ListByPlate: %w", err)
	}
	stays, err := s.stays.ListByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.ListByPlate: %w", err)
	}
	if len(stays) == 0 {
		return nil, fmt.Errorf("service.StayService.ListByPlate: no stays for plate %s: %w", plate, domain.ErrNotFound)
	}
	return stays, nil
}

// GetOpen returns the single open stay of plate.
// Returns domain.ErrNotFound if the plate is not currently parked.
func (s *StayService) GetOpen(ctx context.Context, plate string) (domain.Stay, error) {
	plate, err := normalizePlate(plate)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("service.StayService.GetOpen: %w", err)
	}
	stay, err := s.stays.GetOpenByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Stay{}, fmt.Errorf("service.StayService.GetOpen: no open stay for plate %s: %w", plate, domain.ErrNotFound)
		}
		return domain.Stay{}, fmt.Errorf("service.StayService.GetOpen: %w", err)
	}
	return stay, nil
}
