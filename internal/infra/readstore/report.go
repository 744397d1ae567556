package readstore

import (
	"context"
	"time"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

func (s *ReportReadStore) DailyCounts(ctx context.Context, from, to time.Time) (*queries.DailyCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM coupons WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM coupon_redemptions WHERE redeemed_at >= $1 AND redeemed_at < $2)`

	var c queries.DailyCounts
	err := s.db.QueryRow(ctx, query, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to)).
		Scan(&c.NewUsers, &c.NewCoupons, &c.Redemptions)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count daily activity", err)
	}

	return &c, nil
}
