package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// mockEventRecorder is a test double for handler.EventRecorder.
// Set only the method fields your test needs.
type mockEventRecorder struct {
	record     func(ctx context.Context, plate, kind string) (domain.Recording, error)
	listEvents func(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error)
}

func (m *mockEventRecorder) Record(ctx context.Context, plate, kind string) (domain.Recording, error) {
	return m.record(ctx, plate, kind)
}
func (m *mockEventRecorder) ListEvents(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.listEvents(ctx, plate, p)
}

// mockStayQuerier is a test double for handler.StayQuerier.
type mockStayQuerier struct {
	list        func(ctx context.Context, f domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error)
	listByPlate func(ctx context.Context, plate string) ([]domain.Stay, error)
	getOpen     func(ctx context.Context, plate string) (domain.Stay, error)
}

func (m *mockStayQuerier) List(ctx context.Context, f domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error) {
	return m.list(ctx, f, p)
}
func (m *mockStayQuerier) ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error) {
	return m.listByPlate(ctx, plate)
}
func (m *mockStayQuerier) GetOpen(ctx context.Context, plate string) (domain.Stay, error) {
	return m.getOpen(ctx, plate)
}

// mockInvoiceGenerator is a test double for handler.InvoiceGenerator.
type mockInvoiceGenerator struct {
	generate func(ctx context.Context, plate string) (domain.Invoice, bool, error)
	list     func(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error)
}

func (m *mockInvoiceGenerator) Generate(ctx context.Context, plate string) (domain.Invoice, bool, error) {
	return m.generate(ctx, plate)
}
func (m *mockInvoiceGenerator) List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	return m.list(ctx, plate, p)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.EventRecorder    = (*mockEventRecorder)(nil)
	_ handler.StayQuerier      = (*mockStayQuerier)(nil)
	_ handler.InvoiceGenerator = (*mockInvoiceGenerator)(nil)
)

// ---- helpers ---------------------------------------------------------------

// serve runs one request through the full router wired with the given mocks.
func serve(t *testing.T, srv *handler.Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.Handler(srv).ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[gen.ErrorResponse](t, rec).Error.Code
}
