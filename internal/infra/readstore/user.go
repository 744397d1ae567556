package readstore

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, full_name, email, role, referral_code, points, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&v.ID, &v.FullName, &v.Email, &v.Role, &v.ReferralCode, &v.Points, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &v, nil
}

func (s *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*queries.CredentialView, error) {
	const query = `
		SELECT id, full_name, email, role, password_hash
		FROM users
		WHERE lower(email) = lower($1)`

	var v queries.CredentialView
	err := s.db.QueryRow(ctx, query, email).
		Scan(&v.ID, &v.FullName, &v.Email, &v.Role, &v.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find credentials", err)
	}

	return &v, nil
}

func (s *UserReadStore) GetPoints(ctx context.Context, id uuid.UUID) (int, error) {
	const query = `SELECT points FROM users WHERE id = $1`

	var points int
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&points)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to get points", err)
	}

	return points, nil
}

// GetStats reads the lifetime counters that Credit/Debit maintain alongside
// the balance; only the per-entity counts are derived.
func (s *UserReadStore) GetStats(ctx context.Context, id uuid.UUID) (*queries.UserStatsView, error) {
	const query = `
		SELECT
			u.points,
			u.total_points_earned,
			u.total_points_spent,
			(SELECT COUNT(*) FROM coupons c WHERE c.listed_by = u.id),
			(SELECT COUNT(*) FROM coupon_redemptions r WHERE r.user_id = u.id)
		FROM users u
		WHERE u.id = $1`

	var v queries.UserStatsView
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&v.CurrentPoints, &v.TotalEarned, &v.TotalSpent, &v.CouponsAdded, &v.CouponsRedeemed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user stats", err)
	}

	return &v, nil
}

func (s *UserReadStore) ListAdmins(ctx context.Context) ([]queries.AdminView, error) {
	const query = `SELECT id, full_name, email FROM users WHERE role = 'admin' ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admins", err)
	}
	defer rows.Close()

	var admins []queries.AdminView
	for rows.Next() {
		var a queries.AdminView
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin row", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate admin rows", err)
	}

	return admins, nil
}
