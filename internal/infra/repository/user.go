package repository

import (
	"context"

	"dealvista/internal/domain/user"
	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, full_name, email, password_hash, role, referral_code, points)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.FullName().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.ReferralCode(),
	).Scan(&id)
	if err != nil {
		switch infra.UniqueViolationConstraint(err) {
		case "users_referral_code_key":
			return uuid.Nil, infra.WrapRepoErr("referral code already exists", err, infra.KindReferralCollision)
		case "":
			return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
		default:
			return uuid.Nil, infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
	}

	return id, nil
}

func (r *UserRepository) Credit(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	const query = `
		UPDATE users
		SET points = points + $2,
		    total_points_earned = total_points_earned + $2,
		    updated_at = now()
		WHERE id = $1
		RETURNING points`

	var balance int
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID), amount).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to credit points", err)
	}

	return balance, nil
}

// Debit decrements the balance in a single conditional update. The predicate
// rejects the write when it would make the balance negative, so concurrent
// debits can never overdraw.
func (r *UserRepository) Debit(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	const query = `
		UPDATE users
		SET points = points - $2,
		    total_points_spent = total_points_spent + $2,
		    updated_at = now()
		WHERE id = $1 AND points >= $2
		RETURNING points`

	var balance int
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID), amount).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to debit points", err)
	}

	// No row matched: distinguish a missing user from an insufficient balance.
	var exists bool
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	if checkErr := r.db.QueryRow(ctx, existsQuery, pgconv.UUIDToPgtype(userID)).Scan(&exists); checkErr != nil {
		return 0, infra.WrapRepoErr("failed to check user existence", checkErr)
	}
	if !exists {
		return 0, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return 0, infra.WrapRepoErr("insufficient points", nil, infra.KindInsufficient)
}
