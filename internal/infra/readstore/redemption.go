package readstore

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(dbtx db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: dbtx}
}

func (s *RedemptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.RedeemedCouponView, error) {
	const query = `
		SELECT r.id, c.id, c.title, c.code, c.platform, c.category,
		       c.discount_type, c.discount_value, r.points_deducted, r.redeemed_at
		FROM coupon_redemptions r
		JOIN coupons c ON c.id = r.coupon_id
		WHERE r.user_id = $1
		ORDER BY r.redeemed_at DESC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	items := []queries.RedeemedCouponView{}
	for rows.Next() {
		var v queries.RedeemedCouponView
		err := rows.Scan(
			&v.RedemptionID, &v.CouponID, &v.Title, &v.Code, &v.Platform, &v.Category,
			&v.DiscountType, &v.DiscountValue, &v.PointsDeducted, &v.RedeemedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption row", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemption rows", err)
	}

	return items, nil
}
