package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/model"
	"github.com/zcprivacy-byte/voucher-vault-1/internal/domain/ports/repository"
)

// Ensure voucherRepo implements repository.VoucherRepository
var _ repository.VoucherRepository = (*voucherRepo)(nil)

type voucherRepo struct {
	pool *pgxpool.Pool
}

func NewVoucherRepo(pool *pgxpool.Pool) *voucherRepo {
	return &voucherRepo{pool: pool}
}

const voucherColumns = `
id, brand_name, voucher_code, expiry_date, scope, redemption_type,
discount_amount, discount_value, currency_code, discount_unit,
region, store_location, category, description, created_at`

func (r *voucherRepo) Save(ctx context.Context, tx repository.Tx, v *model.Voucher) error {
	const q = `
INSERT INTO vouchers (
  id, brand_name, voucher_code, expiry_date, scope, redemption_type,
  discount_amount, discount_value, currency_code, discount_unit,
  region, store_location, category, description, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
ON CONFLICT (id) DO UPDATE SET
  brand_name=$2, voucher_code=$3, expiry_date=$4, scope=$5, redemption_type=$6,
  discount_amount=$7, discount_value=$8, currency_code=$9, discount_unit=$10,
  region=$11, store_location=$12, category=$13, description=$14;`

	_, err := execSQL(ctx, r.pool, tx, q,
		v.ID, v.BrandName, v.VoucherCode, v.ExpiryDate, v.Scope, v.Redemption,
		v.DiscountAmount, v.DiscountValue, v.CurrencyCode, v.DiscountUnit,
		v.Region, v.StoreLocation, v.Category, v.Description, v.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidExecContext):
			return err
		default:
			return domain.ErrOperationFailed
		}
	}
	return nil
}

func (r *voucherRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Voucher, error) {
	q := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id=$1;`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	v, err := scanVoucher(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return v, nil
}

func (r *voucherRepo) FindAll(ctx context.Context, tx repository.Tx) ([]*model.Voucher, error) {
	q := `SELECT ` + voucherColumns + ` FROM vouchers ORDER BY created_at ASC;`
	rows, err := queryRows(ctx, r.pool, tx, q)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidExecContext):
			return nil, err
		default:
			return nil, domain.ErrOperationFailed
		}
	}
	defer rows.Close()
	var out []*model.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrReadDatabaseRow
	}
	return out, nil
}

func (r *voucherRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	const q = `DELETE FROM vouchers WHERE id=$1;`
	tag, err := execSQL(ctx, r.pool, tx, q, id)
	if err != nil {
		return domain.ErrOperationFailed
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVoucher(row pgx.Row) (*model.Voucher, error) {
	var v model.Voucher
	err := row.Scan(
		&v.ID, &v.BrandName, &v.VoucherCode, &v.ExpiryDate, &v.Scope, &v.Redemption,
		&v.DiscountAmount, &v.DiscountValue, &v.CurrencyCode, &v.DiscountUnit,
		&v.Region, &v.StoreLocation, &v.Category, &v.Description, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Stored expiry is a DATE column; pgx hands it back at UTC midnight
	// already, this just pins the invariant.
	v.ExpiryDate = model.DateOf(v.ExpiryDate)
	return &v, nil
}
