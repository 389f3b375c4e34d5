package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/repo"
)

// ---- in-memory store ---------------------------------------------------------

// memStore is an in-memory test double for the stay, event, and invoice repos.
// It enforces the same one-open-stay-per-plate rule as the Postgres index.
type memStore struct {
	mu       sync.Mutex
	stays    []domain.Stay
	events   []domain.Event
	invoices []domain.Invoice
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) stayRepo() repo.StayRepo       { return memStays{m} }
func (m *memStore) eventRepo() repo.EventRepo     { return memEvents{m} }
func (m *memStore) invoiceRepo() repo.InvoiceRepo { return memInvoices{m} }

type memStays struct{ m *memStore }

func (r memStays) Create(_ context.Context, plate string, entry time.Time) (domain.Stay, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.stays {
		if s.Plate == plate && s.Open() {
			return domain.Stay{}, domain.ErrConflict
		}
	}
	s := domain.Stay{ID: int64(len(r.m.stays) + 1), Plate: plate, EntryTime: entry}
	r.m.stays = append(r.m.stays, s)
	return s, nil
}

func (r memStays) GetOpenByPlate(_ context.Context, plate string) (domain.Stay, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.stays {
		if s.Plate == plate && s.Open() {
			return s, nil
		}
	}
	return domain.Stay{}, domain.ErrNotFound
}

func (r memStays) LockOpenByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	return r.GetOpenByPlate(ctx, plate)
}

func (r memStays) Close(_ context.Context, stay domain.Stay) (domain.Stay, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i, s := range r.m.stays {
		if s.ID == stay.ID && s.Open() {
			r.m.stays[i].ExitTime = stay.ExitTime
			r.m.stays[i].DurationMinutes = stay.DurationMinutes
			return r.m.stays[i], nil
		}
	}
	return domain.Stay{}, domain.ErrNotFound
}

func (r memStays) LatestClosedByPlate(_ context.Context, plate string) (domain.Stay, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := len(r.m.stays) - 1; i >= 0; i-- {
		if s := r.m.stays[i]; s.Plate == plate && !s.Open() {
			return s, nil
		}
	}
	return domain.Stay{}, domain.ErrNotFound
}

func (r memStays) List(_ context.Context, f domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Stay
	for _, s := range r.m.stays {
		if f.Plate != "" && s.Plate != f.Plate {
			continue
		}
		if (f.Status == domain.StayOpen && !s.Open()) || (f.Status == domain.StayClosed && s.Open()) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, p), int64(len(out)), nil
}

func (r memStays) ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error) {
	out, _, err := r.List(ctx, domain.StayFilter{Plate: plate}, domain.PaginationParams{Page: 1, Limit: 1 << 30})
	return out, err
}

type memEvents struct{ m *memStore }

func (r memEvents) Create(_ context.Context, ev domain.Event) (domain.Event, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ev.ID = int64(len(r.m.events) + 1)
	r.m.events = append(r.m.events, ev)
	return ev, nil
}

func (r memEvents) List(_ context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Event
	for i := len(r.m.events) - 1; i >= 0; i-- {
		if plate == "" || r.m.events[i].Plate == plate {
			out = append(out, r.m.events[i])
		}
	}
	return page(out, p), int64(len(out)), nil
}

type memInvoices struct{ m *memStore }

func (r memInvoices) Create(_ context.Context, inv domain.Invoice) (domain.Invoice, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	inv.ID = int64(len(r.m.invoices) + 1)
	r.m.invoices = append(r.m.invoices, inv)
	return inv, nil
}

func (r memInvoices) LatestByStay(_ context.Context, stayID int64) (domain.Invoice, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := len(r.m.invoices) - 1; i >= 0; i-- {
		if r.m.invoices[i].StayID == stayID {
			return r.m.invoices[i], nil
		}
	}
	return domain.Invoice{}, domain.ErrNotFound
}

func (r memInvoices) List(_ context.Context, plate string, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Invoice
	for i := len(r.m.invoices) - 1; i >= 0; i-- {
		if plate == "" || r.m.invoices[i].Plate == plate {
			out = append(out, r.m.invoices[i])
		}
	}
	return page(out, p), int64(len(out)), nil
}

func page[T any](items []T, p domain.PaginationParams) []T {
	start := min(p.Offset(), len(items))
	end := min(start+p.Limit, len(items))
	return items[start:end]
}

// compile-time checks: the in-memory repos must satisfy the repo interfaces.
var (
	_ repo.StayRepo    = memStays{}
	_ repo.EventRepo   = memEvents{}
	_ repo.InvoiceRepo = memInvoices{}
)

// ---- function-field mocks ----------------------------------------------------

// mockStayRepo is a hand-written test double for repo.StayRepo.
// Set only the method fields your test needs.
type mockStayRepo struct {
	create              func(ctx context.Context, plate string, entry time.Time) (domain.Stay, error)
	getOpenByPlate      func(ctx context.Context, plate string) (domain.Stay, error)
	lockOpenByPlate     func(ctx context.Context, plate string) (domain.Stay, error)
	close               func(ctx context.Context, stay domain.Stay) (domain.Stay, error)
	latestClosedByPlate func(ctx context.Context, plate string) (domain.Stay, error)
	list                func(ctx context.Context, f domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error)
	listByPlate         func(ctx context.Context, plate string) ([]domain.Stay, error)
}

func (m *mockStayRepo) Create(ctx context.Context, plate string, entry time.Time) (domain.Stay, error) {
	return m.create(ctx, plate, entry)
}
func (m *mockStayRepo) GetOpenByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	return m.getOpenByPlate(ctx, plate)
}
func (m *mockStayRepo) LockOpenByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	return m.lockOpenByPlate(ctx, plate)
}
func (m *mockStayRepo) Close(ctx context.Context, stay domain.Stay) (domain.Stay, error) {
	return m.close(ctx, stay)
}
func (m *mockStayRepo) LatestClosedByPlate(ctx context.Context, plate string) (domain.Stay, error) {
	return m.latestClosedByPlate(ctx, plate)
}
func (m *mockStayRepo) List(ctx context.Context, f domain.StayFilter, p domain.PaginationParams) ([]domain.Stay, int64, error) {
	return m.list(ctx, f, p)
}
func (m *mockStayRepo) ListByPlate(ctx context.Context, plate string) ([]domain.Stay, error) {
	return m.listByPlate(ctx, plate)
}

var _ repo.StayRepo = (*mockStayRepo)(nil)

// mockEventRepo is a hand-written test double for repo.EventRepo.
type mockEventRepo struct {
	create func(ctx context.Context, ev domain.Event) (domain.Event, error)
	list   func(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error)
}

func (m *mockEventRepo) Create(ctx context.Context, ev domain.Event) (domain.Event, error) {
	return m.create(ctx, ev)
}
func (m *mockEventRepo) List(ctx context.Context, plate string, p domain.PaginationParams) ([]domain.Event, int64, error) {
	return m.list(ctx, plate, p)
}

var _ repo.EventRepo = (*mockEventRepo)(nil)

// ---- transactor & publisher ----------------------------------------------------

// directTx runs fn without a transaction and counts calls.
type directTx struct{ calls int }

func (d *directTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	d.calls++
	return fn(ctx)
}

// published is one captured notification.
type published struct {
	topic   string
	payload any
}

// recordingPublisher captures notifications and optionally fails.
type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{topic: topic, payload: payload})
	return nil
}

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.sent))
	for i, s := range p.sent {
		out[i] = s.topic
	}
	return out
}
