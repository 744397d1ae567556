package repository

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"

	"github.com/google/uuid"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

// ClaimIfAbsent inserts the (user, coupon) pair, relying on the unique
// constraint to reject a second redemption. ON CONFLICT DO NOTHING turns the
// race between two concurrent inserts into a plain no-row result.
func (r *RedemptionRepository) ClaimIfAbsent(ctx context.Context, userID, couponID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO coupon_redemptions (id, user_id, coupon_id, points_deducted)
		VALUES (gen_random_uuid(), $1, $2, 0)
		ON CONFLICT (user_id, coupon_id) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(userID),
		pgconv.UUIDToPgtype(couponID),
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon already redeemed by user", nil, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to record redemption", err)
	}

	return id, nil
}

func (r *RedemptionRepository) Finalize(ctx context.Context, redemptionID uuid.UUID, pointsDeducted int) error {
	const query = `
		UPDATE coupon_redemptions
		SET points_deducted = $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(redemptionID), pointsDeducted)
	if err != nil {
		return infra.WrapRepoErr("failed to finalize redemption", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("redemption not found", nil, infra.KindNotFound)
	}

	return nil
}
