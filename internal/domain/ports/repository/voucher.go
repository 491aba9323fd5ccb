package repository

import (
	"context"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
)

type VoucherRepository interface {
	// Save inserts or fully replaces a voucher.
	Save(ctx context.Context, tx Tx, v *model.Voucher) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Voucher, error)
	FindAll(ctx context.Context, tx Tx) ([]*model.Voucher, error)
	// Delete removes a voucher; deleting an unknown id returns ErrNotFound.
	Delete(ctx context.Context, tx Tx, id string) error
}
