package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/adapter"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// --- In-memory voucher repository ---

type memVoucherRepo struct {
	mu       sync.Mutex
	vouchers map[string]*model.Voucher

	findAllErr error
}

func newMemVoucherRepo(vouchers ...*model.Voucher) *memVoucherRepo {
	r := &memVoucherRepo{vouchers: make(map[string]*model.Voucher)}
	for _, v := range vouchers {
		r.vouchers[v.ID] = v
	}
	return r
}

func (r *memVoucherRepo) Save(_ context.Context, _ repository.Tx, v *model.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vouchers[v.ID] = &cp
	return nil
}

func (r *memVoucherRepo) FindByID(_ context.Context, _ repository.Tx, id string) (*model.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vouchers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *memVoucherRepo) FindAll(_ context.Context, _ repository.Tx) ([]*model.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	out := make([]*model.Voucher, 0, len(r.vouchers))
	for _, v := range r.vouchers {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memVoucherRepo) Delete(_ context.Context, _ repository.Tx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vouchers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.vouchers, id)
	return nil
}

// --- In-memory settings repository ---

type memSettingsRepo struct {
	mu      sync.Mutex
	current *model.ReminderSettings

	loadErr error
}

func (r *memSettingsRepo) Load(_ context.Context, _ repository.Tx) (*model.ReminderSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.current == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.current
	return &cp, nil
}

func (r *memSettingsRepo) Save(_ context.Context, _ repository.Tx, s *model.ReminderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.current = &cp
	return nil
}

// --- In-memory sent-reminder log ---

type sentKey struct {
	voucherID string
	threshold int
}

type memSentRepo struct {
	mu      sync.Mutex
	records map[sentKey]time.Time

	findAllErr error
	markErr    error
}

func newMemSentRepo() *memSentRepo {
	return &memSentRepo{records: make(map[sentKey]time.Time)}
}

func (r *memSentRepo) FindAll(_ context.Context, _ repository.Tx) ([]*model.SentReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	out := make([]*model.SentReminder, 0, len(r.records))
	for k, at := range r.records {
		out = append(out, &model.SentReminder{VoucherID: k.voucherID, ThresholdDays: k.threshold, SentAt: at})
	}
	return out, nil
}

func (r *memSentRepo) MarkSent(_ context.Context, _ repository.Tx, voucherID string, thresholdDays int, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.markErr != nil {
		return r.markErr
	}
	k := sentKey{voucherID, thresholdDays}
	// Duplicate pairs are a no-op, matching the unique-constraint upsert.
	if _, ok := r.records[k]; !ok {
		r.records[k] = sentAt
	}
	return nil
}

func (r *memSentRepo) DeleteByVoucher(_ context.Context, _ repository.Tx, voucherID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.records {
		if k.voucherID == voucherID {
			delete(r.records, k)
		}
	}
	return nil
}

func (r *memSentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *memSentRepo) has(voucherID string, threshold int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[sentKey{voucherID, threshold}]
	return ok
}

// --- Transaction manager passthrough ---

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	m.calls++
	return fn(ctx, repository.NoTX)
}

// --- Dispatcher mock ---

type mockDispatcher struct {
	mu       sync.Mutex
	payloads []model.ReminderPayload

	outcomes func(p model.ReminderPayload) []adapter.DispatchOutcome
}

func (m *mockDispatcher) Dispatch(_ context.Context, p model.ReminderPayload, _ *model.ReminderSettings) []adapter.DispatchOutcome {
	m.mu.Lock()
	m.payloads = append(m.payloads, p)
	m.mu.Unlock()
	if m.outcomes != nil {
		return m.outcomes(p)
	}
	return []adapter.DispatchOutcome{{Channel: "local-notification"}}
}

func (m *mockDispatcher) dispatched() []model.ReminderPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ReminderPayload(nil), m.payloads...)
}
