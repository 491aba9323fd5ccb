package web

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

type mockVoucherUC struct {
	create       func(ctx context.Context, input model.Voucher) (*model.Voucher, error)
	list         func(ctx context.Context) ([]*model.Voucher, error)
	get          func(ctx context.Context, id string) (*model.Voucher, error)
	delete       func(ctx context.Context, id string) error
	stats        func(ctx context.Context) (model.Stats, error)
	expiringSoon func(ctx context.Context, windowDays int) ([]*model.Voucher, error)
	prefill      func(fields model.ScannedFields) *model.Voucher
}

func (m *mockVoucherUC) Create(ctx context.Context, input model.Voucher) (*model.Voucher, error) {
	return m.create(ctx, input)
}

func (m *mockVoucherUC) List(ctx context.Context) ([]*model.Voucher, error) {
	return m.list(ctx)
}

func (m *mockVoucherUC) Get(ctx context.Context, id string) (*model.Voucher, error) {
	return m.get(ctx, id)
}

func (m *mockVoucherUC) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

func (m *mockVoucherUC) Stats(ctx context.Context) (model.Stats, error) {
	return m.stats(ctx)
}

func (m *mockVoucherUC) ExpiringSoon(ctx context.Context, windowDays int) ([]*model.Voucher, error) {
	return m.expiringSoon(ctx, windowDays)
}

func (m *mockVoucherUC) PrefillFromScan(fields model.ScannedFields) *model.Voucher {
	return m.prefill(fields)
}

type mockCheckInUC struct {
	findNearby func(ctx context.Context, q model.CheckInQuery) ([]*model.Voucher, error)
}

func (m *mockCheckInUC) FindNearby(ctx context.Context, q model.CheckInQuery) ([]*model.Voucher, error) {
	return m.findNearby(ctx, q)
}

type mockSettingsUC struct {
	get       func(ctx context.Context) (*model.ReminderSettings, error)
	save      func(ctx context.Context, s *model.ReminderSettings) (*model.ReminderSettings, error)
	addDay    func(ctx context.Context, day int) (*model.ReminderSettings, error)
	removeDay func(ctx context.Context, day int) (*model.ReminderSettings, error)
}

func (m *mockSettingsUC) Get(ctx context.Context) (*model.ReminderSettings, error) {
	return m.get(ctx)
}

func (m *mockSettingsUC) Save(ctx context.Context, s *model.ReminderSettings) (*model.ReminderSettings, error) {
	return m.save(ctx, s)
}

func (m *mockSettingsUC) AddReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error) {
	return m.addDay(ctx, day)
}

func (m *mockSettingsUC) RemoveReminderDay(ctx context.Context, day int) (*model.ReminderSettings, error) {
	return m.removeDay(ctx, day)
}

type stubFeed struct {
	payloads []model.ReminderPayload
}

func (f *stubFeed) Drain() []model.ReminderPayload {
	out := f.payloads
	f.payloads = nil
	return out
}

type stubRunner struct {
	due int
	err error
}

func (r *stubRunner) RunNow(context.Context) (int, error) { return r.due, r.err }
