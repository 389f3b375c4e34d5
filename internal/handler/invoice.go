package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

// GenerateInvoice handles POST /plates/{plate}/invoices.
// Answers 201 with a new invoice, 200 when an existing invoice was returned
// instead (dedupe mode), and 404 when the plate has no closed stay.
func (s *Server) GenerateInvoice(ctx context.Context, req gen.GenerateInvoiceRequestObject) (gen.GenerateInvoiceResponseObject, error) {
	inv, created, err := s.invoices.Generate(ctx, req.Plate)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GenerateInvoice422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("no closed stay for plate %s", strings.TrimSpace(req.Plate))
			return gen.GenerateInvoice404JSONResponse(notFoundBody(msg)), nil
		}
		return nil, err
	}

	if created {
		return gen.GenerateInvoice201JSONResponse(invoiceToResponse(inv)), nil
	}
	return gen.GenerateInvoice200JSONResponse(invoiceToResponse(inv)), nil
}

// ListInvoices handles GET /invoices.
// Supports ?plate=, ?page= and ?limit=.
func (s *Server) ListInvoices(ctx context.Context, req gen.ListInvoicesRequestObject) (gen.ListInvoicesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	invoices, total, err := s.invoices.List(ctx, plateFilter(req.Params.Plate), params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Invoice, len(invoices))
	for i, inv := range invoices {
		data[i] = invoiceToResponse(inv)
	}
	return gen.ListInvoices200JSONResponse{
		Data:       data,
		Pagination: pagination(params, total),
	}, nil
}

func invoiceToResponse(inv domain.Invoice) gen.Invoice {
	return gen.Invoice{
		Id:              inv.ID,
		StayId:          inv.StayID,
		Plate:           inv.Plate,
		DurationMinutes: inv.DurationMinutes,
		RatePerMinute:   inv.RatePerMinute,
		Total:           inv.Total,
		GeneratedAt:     inv.GeneratedAt,
	}
}
