//go:build unit

package commands_test

import (
	"context"
	"sync"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/domain/user"
	"dealvista/internal/infra"
	"dealvista/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work with transactional semantics: a failed fn restores
// the pre-transaction state, mirroring a database rollback.

type fakeUser struct {
	points int
	earned int
	spent  int
}

type fakeCoupon struct {
	title         string
	code          string
	totalQuantity int
	soldQuantity  int
	isActive      bool
	redeemCost    int
}

type fakeState struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*fakeUser
	emails      map[string]bool
	coupons     map[uuid.UUID]*fakeCoupon
	redemptions map[[2]uuid.UUID]uuid.UUID
	finalized   map[uuid.UUID]int
	logs        []string

	// remaining Create calls that fail with a referral code collision;
	// deliberately not rolled back with the rest of the state.
	referralCollisions int
}

func newFakeState() *fakeState {
	return &fakeState{
		users:       map[uuid.UUID]*fakeUser{},
		emails:      map[string]bool{},
		coupons:     map[uuid.UUID]*fakeCoupon{},
		redemptions: map[[2]uuid.UUID]uuid.UUID{},
		finalized:   map[uuid.UUID]int{},
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for email := range s.emails {
		c.emails[email] = true
	}
	for id, cpn := range s.coupons {
		cp := *cpn
		c.coupons[id] = &cp
	}
	for k, v := range s.redemptions {
		c.redemptions[k] = v
	}
	for k, v := range s.finalized {
		c.finalized[k] = v
	}
	c.logs = append([]string(nil), s.logs...)
	return c
}

func (s *fakeState) restore(from *fakeState) {
	s.users = from.users
	s.emails = from.emails
	s.coupons = from.coupons
	s.redemptions = from.redemptions
	s.finalized = from.finalized
	s.logs = from.logs
}

type fakeUoW struct {
	state *fakeState
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.state.mu.Lock()
	defer u.state.mu.Unlock()

	snapshot := u.state.clone()
	if err := fn(ctx, &fakeTx{state: u.state}); err != nil {
		u.state.restore(snapshot)
		return err
	}
	return nil
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Users() shared.UserRepository             { return &fakeUsers{state: t.state} }
func (t *fakeTx) Coupons() shared.CouponRepository         { return &fakeCoupons{state: t.state} }
func (t *fakeTx) Redemptions() shared.RedemptionRepository { return &fakeRedemptions{state: t.state} }
func (t *fakeTx) ActivityLogs() shared.ActivityLogRepository {
	return &fakeLogs{state: t.state}
}

type fakeUsers struct {
	state *fakeState
}

func (r *fakeUsers) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if r.state.emails[u.Email().Value()] {
		return uuid.Nil, infra.WrapRepoErr("user already exists", nil, infra.KindDuplicateKey)
	}
	if r.state.referralCollisions > 0 {
		r.state.referralCollisions--
		return uuid.Nil, infra.WrapRepoErr("referral code already exists", nil, infra.KindReferralCollision)
	}
	r.state.emails[u.Email().Value()] = true
	r.state.users[u.ID()] = &fakeUser{}
	return u.ID(), nil
}

func (r *fakeUsers) Credit(_ context.Context, userID uuid.UUID, amount int) (int, error) {
	u, ok := r.state.users[userID]
	if !ok {
		return 0, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u.points += amount
	u.earned += amount
	return u.points, nil
}

func (r *fakeUsers) Debit(_ context.Context, userID uuid.UUID, amount int) (int, error) {
	u, ok := r.state.users[userID]
	if !ok {
		return 0, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	if u.points < amount {
		return 0, infra.WrapRepoErr("insufficient points", nil, infra.KindInsufficient)
	}
	u.points -= amount
	u.spent += amount
	return u.points, nil
}

type fakeCoupons struct {
	state *fakeState
}

func (r *fakeCoupons) Create(_ context.Context, c *coupon.Coupon) (uuid.UUID, error) {
	for _, existing := range r.state.coupons {
		if existing.code == c.Code().String() {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.state.coupons[c.ID()] = &fakeCoupon{
		title:         c.Title(),
		code:          c.Code().String(),
		totalQuantity: c.TotalQuantity(),
		isActive:      true,
		redeemCost:    c.RedeemCost(),
	}
	return c.ID(), nil
}

func (r *fakeCoupons) ClaimUnit(_ context.Context, couponID uuid.UUID) (shared.ClaimedUnit, error) {
	c, ok := r.state.coupons[couponID]
	if !ok {
		return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	if c.soldQuantity >= c.totalQuantity {
		return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon sold out", nil, infra.KindSoldOut)
	}
	if !c.isActive {
		return shared.ClaimedUnit{}, infra.WrapRepoErr("coupon is not active", nil, infra.KindInactive)
	}
	c.soldQuantity++
	c.isActive = c.soldQuantity < c.totalQuantity
	return shared.ClaimedUnit{
		Title:      c.title,
		Code:       c.code,
		RedeemCost: c.redeemCost,
		Remaining:  c.totalQuantity - c.soldQuantity,
	}, nil
}

type fakeRedemptions struct {
	state *fakeState
}

func (r *fakeRedemptions) ClaimIfAbsent(_ context.Context, userID, couponID uuid.UUID) (uuid.UUID, error) {
	key := [2]uuid.UUID{userID, couponID}
	if _, exists := r.state.redemptions[key]; exists {
		return uuid.Nil, infra.WrapRepoErr("coupon already redeemed by user", nil, infra.KindDuplicateKey)
	}
	id := uuid.New()
	r.state.redemptions[key] = id
	return id, nil
}

func (r *fakeRedemptions) Finalize(_ context.Context, redemptionID uuid.UUID, pointsDeducted int) error {
	r.state.finalized[redemptionID] = pointsDeducted
	return nil
}

type fakeLogs struct {
	state *fakeState
}

func (r *fakeLogs) Append(_ context.Context, _ *uuid.UUID, message string) error {
	r.state.logs = append(r.state.logs, message)
	return nil
}
