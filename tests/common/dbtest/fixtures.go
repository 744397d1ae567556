//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dealvista/internal/pkg/referral"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string, points int) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// seeded points count as earned so the lifetime counters stay consistent
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, full_name, email, password_hash, role, referral_code, points, total_points_earned) VALUES ($1, $2, $3, $4, $5, $6, $7, $7) ON CONFLICT (lower(email)) DO NOTHING",
		userID, "Test User", email, testPasswordHash, role, referral.NewCode(), points)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestCoupon(t *testing.T, db DBLike, listedBy uuid.UUID, title, code string, quantity, redeemCost int) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO coupons (id, title, code, discount_type, discount_value, total_quantity, redeem_cost, listed_by)
		 VALUES ($1, $2, $3, 'percentage', 20, $4, $5, $6)`,
		couponID, title, code, quantity, redeemCost, listedBy)
	require.NoError(t, err)

	return couponID
}

func DeactivateCoupon(t *testing.T, db DBLike, couponID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE coupons SET is_active = FALSE WHERE id = $1", couponID)
	require.NoError(t, err)
}

func GetUserPoints(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var points int
	err := db.QueryRow(context.Background(),
		"SELECT points FROM users WHERE id = $1", userID).Scan(&points)
	require.NoError(t, err)
	return points
}

func GetCouponInventory(t *testing.T, db DBLike, couponID uuid.UUID) (sold int, active bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT sold_quantity, is_active FROM coupons WHERE id = $1", couponID).Scan(&sold, &active)
	require.NoError(t, err)
	return sold, active
}

func CountRedemptions(t *testing.T, db DBLike, couponID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM coupon_redemptions WHERE coupon_id = $1", couponID).Scan(&n)
	require.NoError(t, err)
	return n
}

// the schema has no reference tables, so there is nothing to seed after a reset.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
