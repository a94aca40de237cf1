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

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

const productColumns = `
id, name, slug, description, price, category, images_json,
in_stock, stock_quantity, featured, badge, seo_json, seo_score,
created_at, updated_at`

func (r *MySQLProductRepo) Create(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	seo, err := json.Marshal(p.SEO)
	if err != nil {
		return fmt.Errorf("marshal seo: %w", err)
	}
	p.SEOScore = domain.SEOScore(*p)
	_, err = r.db.ExecContext(ctx, `
INSERT INTO products
  (id, name, slug, description, price, category, images_json,
   in_stock, stock_quantity, featured, badge, seo_json, seo_score,
   created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,NOW(),NOW())
`, p.ID, p.Name, p.Slug, p.Description, p.Price, p.Category, images,
		p.InStock, p.StockQuantity, p.Featured, p.Badge, seo, p.SEOScore)
	return err
}

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var (
		p          domain.Product
		imagesJSON []byte
		seoJSON    []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Category, &imagesJSON,
		&p.InStock, &p.StockQuantity, &p.Featured, &p.Badge, &seoJSON, &p.SEOScore,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	if len(seoJSON) > 0 {
		if err := json.Unmarshal(seoJSON, &p.SEO); err != nil {
			return nil, fmt.Errorf("unmarshal seo: %w", err)
		}
	}
	return &p, nil
}

func (r *MySQLProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id=?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	return p, err
}

func (r *MySQLProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE slug=?`, slug)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	return p, err
}

func (r *MySQLProductRepo) List(ctx context.Context, f usecase.ProductFilter) ([]domain.Product, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if f.Category != "" {
		query += ` AND category=?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		query += ` AND (name LIKE ? OR description LIKE ?)`
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}
	if f.Featured != nil {
		query += ` AND featured=?`
		args = append(args, *f.Featured)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update rewrites every editable field and recomputes the SEO score
// server-side, so a stale client cannot persist an outdated score.
func (r *MySQLProductRepo) Update(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	seo, err := json.Marshal(p.SEO)
	if err != nil {
		return fmt.Errorf("marshal seo: %w", err)
	}
	p.SEOScore = domain.SEOScore(*p)

	res, err := r.db.ExecContext(ctx, `
UPDATE products
SET name=?, slug=?, description=?, price=?, category=?, images_json=?,
    in_stock=?, stock_quantity=?, featured=?, badge=?, seo_json=?, seo_score=?,
    updated_at=NOW()
WHERE id=?
`, p.Name, p.Slug, p.Description, p.Price, p.Category, images,
		p.InStock, p.StockQuantity, p.Featured, p.Badge, seo, p.SEOScore, p.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *MySQLProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

var _ usecase.ProductRepo = (*MySQLProductRepo)(nil)
