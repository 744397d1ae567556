package queries

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type CouponQueryService struct {
	coupons CouponReadStore
}

func NewCouponQueryService(coupons CouponReadStore) *CouponQueryService {
	return &CouponQueryService{coupons: coupons}
}

func (s *CouponQueryService) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	v, err := s.coupons.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCouponNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

func (s *CouponQueryService) Browse(ctx context.Context, filter CouponFilter) (*CouponPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	page, err := s.coupons.Search(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return page, nil
}
