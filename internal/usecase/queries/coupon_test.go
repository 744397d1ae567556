//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponReadStore struct {
	byID       map[uuid.UUID]*queries.CouponView
	lastFilter queries.CouponFilter
	page       *queries.CouponPage
}

func (f *fakeCouponReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeCouponReadStore) Search(_ context.Context, filter queries.CouponFilter) (*queries.CouponPage, error) {
	f.lastFilter = filter
	return f.page, nil
}

func (f *fakeCouponReadStore) ListByLister(context.Context, uuid.UUID) ([]queries.CouponView, error) {
	return nil, nil
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	view := &queries.CouponView{
		ID:            uuid.New(),
		Title:         "20% off electronics",
		Code:          "SAVE20",
		DiscountType:  "percentage",
		DiscountValue: 20,
		TotalQuantity: 10,
		IsActive:      true,
		RedeemCost:    5,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	store := &fakeCouponReadStore{byID: map[uuid.UUID]*queries.CouponView{view.ID: view}}
	svc := queries.NewCouponQueryService(store)

	t.Run("basic success case", func(t *testing.T) {
		got, err := svc.GetByID(ctx, view.ID)
		require.NoError(t, err)

		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("coupon view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown coupon", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination defaults and clamping", func(t *testing.T) {
		cases := []struct {
			name     string
			in       queries.CouponFilter
			wantPage int
			wantSize int
		}{
			{name: "zero values get defaults", in: queries.CouponFilter{}, wantPage: 1, wantSize: 20},
			{name: "negative page normalized", in: queries.CouponFilter{Page: -2, PageSize: 10}, wantPage: 1, wantSize: 10},
			{name: "oversized page size clamped", in: queries.CouponFilter{Page: 3, PageSize: 5000}, wantPage: 3, wantSize: 100},
			{name: "valid values untouched", in: queries.CouponFilter{Page: 2, PageSize: 50}, wantPage: 2, wantSize: 50},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := &fakeCouponReadStore{page: &queries.CouponPage{}}
				svc := queries.NewCouponQueryService(store)

				_, err := svc.Browse(ctx, tc.in)
				require.NoError(t, err)
				assert.Equal(t, tc.wantPage, store.lastFilter.Page)
				assert.Equal(t, tc.wantSize, store.lastFilter.PageSize)
			})
		}
	})

	t.Run("filters pass through unchanged", func(t *testing.T) {
		store := &fakeCouponReadStore{page: &queries.CouponPage{}}
		svc := queries.NewCouponQueryService(store)

		in := queries.CouponFilter{
			ActiveOnly:   true,
			Platform:     "Amazon",
			Category:     "Electronics",
			DiscountType: "percentage",
			Search:       "laptop",
			Page:         1,
			PageSize:     20,
		}
		_, err := svc.Browse(ctx, in)
		require.NoError(t, err)

		if diff := cmp.Diff(in, store.lastFilter); diff != "" {
			t.Errorf("filter mismatch (-want +got):\n%s", diff)
		}
	})
}
