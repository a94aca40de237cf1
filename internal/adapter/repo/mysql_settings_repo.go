package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

// MySQLSettingsRepo stores the single back-office settings record. A missing
// row means the administrator has never saved; defaults apply.
type MySQLSettingsRepo struct{ db *sql.DB }

func NewMySQLSettingsRepo(db *sql.DB) *MySQLSettingsRepo { return &MySQLSettingsRepo{db: db} }

func (r *MySQLSettingsRepo) Get(ctx context.Context) (domain.StoreSettings, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT store_name, store_email, store_phone, store_address,
       free_shipping_threshold, standard_shipping_cost, express_shipping_cost,
       cod_enabled, bank_transfer_enabled, order_notifications
FROM store_settings WHERE id=1`)

	var s domain.StoreSettings
	err := row.Scan(
		&s.StoreName, &s.StoreEmail, &s.StorePhone, &s.StoreAddress,
		&s.FreeShippingThreshold, &s.StandardShippingCost, &s.ExpressShippingCost,
		&s.CODEnabled, &s.BankTransferEnabled, &s.OrderNotifications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.StoreSettings{}, err
	}
	return s, nil
}

func (r *MySQLSettingsRepo) Save(ctx context.Context, s domain.StoreSettings) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO store_settings
  (id, store_name, store_email, store_phone, store_address,
   free_shipping_threshold, standard_shipping_cost, express_shipping_cost,
   cod_enabled, bank_transfer_enabled, order_notifications, updated_at)
VALUES (1,?,?,?,?,?,?,?,?,?,?,NOW())
ON DUPLICATE KEY UPDATE
  store_name=VALUES(store_name), store_email=VALUES(store_email),
  store_phone=VALUES(store_phone), store_address=VALUES(store_address),
  free_shipping_threshold=VALUES(free_shipping_threshold),
  standard_shipping_cost=VALUES(standard_shipping_cost),
  express_shipping_cost=VALUES(express_shipping_cost),
  cod_enabled=VALUES(cod_enabled),
  bank_transfer_enabled=VALUES(bank_transfer_enabled),
  order_notifications=VALUES(order_notifications),
  updated_at=NOW()
`, s.StoreName, s.StoreEmail, s.StorePhone, s.StoreAddress,
		s.FreeShippingThreshold, s.StandardShippingCost, s.ExpressShippingCost,
		s.CODEnabled, s.BankTransferEnabled, s.OrderNotifications)
	return err
}

var _ usecase.SettingsRepo = (*MySQLSettingsRepo)(nil)
