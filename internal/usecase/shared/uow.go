package shared

import (
	"context"
)

// UnitOfWork runs fn inside a single database transaction. fn returning an
// error aborts the transaction and every write made through tx is rolled back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transactional repositories. Implementations bind each
// repository to the same underlying transaction.
type Tx interface {
	Users() UserRepository
	Coupons() CouponRepository
	Redemptions() RedemptionRepository
	ActivityLogs() ActivityLogRepository
}
