package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO orders
  (id, order_number, items_json, subtotal, shipping, tax, total,
   status, payment_method, payment_status,
   ship_name, ship_email, ship_phone, ship_street, ship_city, ship_province, ship_postal_code,
   created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,NOW(),NOW())
`, o.ID, o.OrderNumber, items, o.Subtotal, o.Shipping, o.Tax, o.Total,
		o.Status, o.PaymentMethod, o.PaymentStatus,
		o.ShippingAddr.FullName(), o.ShippingAddr.Email, o.ShippingAddr.Phone,
		o.ShippingAddr.Street, o.ShippingAddr.City, o.ShippingAddr.Province, o.ShippingAddr.PostalCode)
	return err
}

const orderColumns = `
id, order_number, items_json, subtotal, shipping, tax, total,
status, payment_method, payment_status,
ship_name, ship_email, ship_phone, ship_street, ship_city, ship_province, ship_postal_code,
created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var (
		o         domain.Order
		itemsJSON []byte
		shipName  string
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &itemsJSON, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total,
		&o.Status, &o.PaymentMethod, &o.PaymentStatus,
		&shipName, &o.ShippingAddr.Email, &o.ShippingAddr.Phone,
		&o.ShippingAddr.Street, &o.ShippingAddr.City, &o.ShippingAddr.Province, &o.ShippingAddr.PostalCode,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// The combined display name is what gets stored; first name carries it back.
	o.ShippingAddr.FirstName = shipName
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &o, nil
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	return o, err
}

// List returns orders newest first, optionally filtered by status.
func (r *MySQLOrderRepo) List(ctx context.Context, status domain.Status, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status=?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id string, to domain.Status) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ?`,
		to, id,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ? AND status = ?`,
		to, id, from,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	// rows == 0 → nothing matched (either not found or status mismatch)
	return rows > 0, nil
}

func (r *MySQLOrderRepo) UpdatePaymentStatus(ctx context.Context, id string, to domain.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET payment_status = ?, updated_at = NOW()
        WHERE id = ?`,
		to, id,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
