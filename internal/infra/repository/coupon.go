package repository

import (
	"context"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error) {
	const query = `
		INSERT INTO coupons (
			id, title, description, code, platform, category,
			discount_type, discount_value, valid_from, valid_till, terms,
			total_quantity, sold_quantity, is_active, redeem_cost, listed_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, TRUE, $13, $14)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		c.Title(),
		c.Description(),
		c.Code().String(),
		c.Platform(),
		c.Category(),
		c.DiscountType().String(),
		c.DiscountValue(),
		pgconv.TimePtrToPgtype(c.ValidFrom()),
		pgconv.TimePtrToPgtype(c.ValidTill()),
		c.Terms(),
		c.TotalQuantity(),
		c.RedeemCost(),
		pgconv.UUIDToPgtype(c.ListedBy()),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}

	return id, nil
}

// ClaimUnit consumes one unit of inventory in a single conditional update.
// The update both increments sold_quantity and recomputes is_active, so a
// coupon deactivates in the same statement that sells its last unit.
func (r *CouponRepository) ClaimUnit(ctx context.Context, couponID uuid.UUID) (shared.ClaimedUnit, error) {
	const query = `
		UPDATE coupons
		SET sold_quantity = sold_quantity + 1,
		    is_active = (sold_quantity + 1 < total_quantity),
		    updated_at = now()
		WHERE id = $1 AND is_active AND sold_quantity < total_quantity
		RETURNING title, code, redeem_cost, total_quantity - sold_quantity`

	var claimed shared.ClaimedUnit
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(couponID)).
		Scan(&claimed.Title, &claimed.Code, &claimed.RedeemCost, &claimed.Remaining)
	if err == nil {
		return claimed, nil
	}
	if !pgconv.IsNoRows(err) {
		return shared.ClaimedUnit{}, infra.WrapRepoErr("failed to claim coupon unit", err)
	}

	// No row matched: read current state to classify the refusal.
	var (
		isActive     bool
		soldQuantity int
		total        int
	)
	const stateQuery = `SELECT is_active, sold_quantity, total_quantity FROM coupons WHERE id = $1`
	checkErr := r.db.QueryRow(ctx, stateQuery, pgconv.UUIDToPgtype(couponID)).
		Scan(&isActive, &soldQuantity, &total)
	if checkErr != nil {
		if pgconv.IsNoRows(checkErr) {
			return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
		}
		return shared.ClaimedUnit{}, infra.WrapRepoErr("failed to check coupon state", checkErr)
	}
	if soldQuantity >= total {
		return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon sold out", nil, infra.KindSoldOut)
	}

	return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon is not active", nil, infra.KindInactive)
}
