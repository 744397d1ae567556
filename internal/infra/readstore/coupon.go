package readstore

import (
	"context"
	"fmt"
	"strings"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const couponColumns = `
	c.id, c.title, c.description, c.code, c.platform, c.category,
	c.discount_type, c.discount_value, c.valid_from, c.valid_till, c.terms,
	c.total_quantity, c.sold_quantity, c.is_active, c.redeem_cost,
	c.listed_by, u.full_name, c.created_at`

func scanCouponView(row interface{ Scan(dest ...any) error }) (queries.CouponView, error) {
	var (
		v                    queries.CouponView
		validFrom, validTill pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Code, &v.Platform, &v.Category,
		&v.DiscountType, &v.DiscountValue, &validFrom, &validTill, &v.Terms,
		&v.TotalQuantity, &v.SoldQuantity, &v.IsActive, &v.RedeemCost,
		&v.ListedBy, &v.ListerName, &v.CreatedAt,
	)
	if err != nil {
		return queries.CouponView{}, err
	}
	v.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	v.ValidTill = pgconv.TimePtrFromPgtype(validTill)
	return v, nil
}

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons c
		JOIN users u ON u.id = c.listed_by
		WHERE c.id = $1`

	v, err := scanCouponView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	return &v, nil
}

// Search applies the browse filters dynamically. Arguments are always bound
// as placeholders, never interpolated.
func (s *CouponReadStore) Search(ctx context.Context, filter queries.CouponFilter) (*queries.CouponPage, error) {
	conds := []string{"TRUE"}
	args := []any{}

	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		conds = append(conds, "c.is_active")
	}
	if filter.Platform != "" {
		conds = append(conds, "c.platform ILIKE "+addArg(filter.Platform))
	}
	if filter.Category != "" {
		conds = append(conds, "c.category ILIKE "+addArg(filter.Category))
	}
	if filter.DiscountType != "" {
		conds = append(conds, "c.discount_type = "+addArg(filter.DiscountType))
	}
	if filter.Search != "" {
		p := addArg("%" + filter.Search + "%")
		conds = append(conds, "(c.title ILIKE "+p+" OR c.description ILIKE "+p+")")
	}

	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM coupons c WHERE ` + where
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count coupons", err)
	}

	limitArg := addArg(filter.PageSize)
	offsetArg := addArg((filter.Page - 1) * filter.PageSize)

	listQuery := `
		SELECT ` + couponColumns + `
		FROM coupons c
		JOIN users u ON u.id = c.listed_by
		WHERE ` + where + `
		ORDER BY c.created_at DESC
		LIMIT ` + limitArg + ` OFFSET ` + offsetArg

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search coupons", err)
	}
	defer rows.Close()

	items := []queries.CouponView{}
	for rows.Next() {
		v, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return &queries.CouponPage{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *CouponReadStore) ListByLister(ctx context.Context, userID uuid.UUID) ([]queries.CouponView, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons c
		JOIN users u ON u.id = c.listed_by
		WHERE c.listed_by = $1
		ORDER BY c.created_at DESC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons by lister", err)
	}
	defer rows.Close()

	items := []queries.CouponView{}
	for rows.Next() {
		v, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return items, nil
}
