package repo

import (
	"context"
	"database/sql"

	domain "github.com/aurea-shop/storefront-api/internal/entity"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

// MySQLAnalyticsRepo computes the admin dashboard aggregates directly in SQL.
// Cancelled orders are excluded from revenue but counted per status.
type MySQLAnalyticsRepo struct {
	db     *sql.DB
	orders *MySQLOrderRepo
}

func NewMySQLAnalyticsRepo(db *sql.DB) *MySQLAnalyticsRepo {
	return &MySQLAnalyticsRepo{db: db, orders: NewMySQLOrderRepo(db)}
}

func (r *MySQLAnalyticsRepo) Summary(ctx context.Context, recentLimit int) (usecase.AnalyticsSummary, error) {
	if recentLimit <= 0 {
		recentLimit = 10
	}

	var s usecase.AnalyticsSummary

	row := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(CASE WHEN status <> 'cancelled' THEN total ELSE 0 END), 0),
       COUNT(*),
       COUNT(DISTINCT ship_phone)
FROM orders`)
	if err := row.Scan(&s.TotalRevenue, &s.TotalOrders, &s.UniqueCustomers); err != nil {
		return usecase.AnalyticsSummary{}, err
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / int64(s.TotalOrders)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return usecase.AnalyticsSummary{}, err
	}
	defer rows.Close()

	s.StatusCounts = make(map[domain.Status]int)
	for rows.Next() {
		var (
			st domain.Status
			n  int
		)
		if err := rows.Scan(&st, &n); err != nil {
			return usecase.AnalyticsSummary{}, err
		}
		s.StatusCounts[st] = n
	}
	if err := rows.Err(); err != nil {
		return usecase.AnalyticsSummary{}, err
	}

	recent, err := r.orders.List(ctx, "", recentLimit)
	if err != nil {
		return usecase.AnalyticsSummary{}, err
	}
	s.RecentOrders = recent

	return s, nil
}

var _ usecase.AnalyticsRepo = (*MySQLAnalyticsRepo)(nil)
