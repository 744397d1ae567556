package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// User errors
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponInactive = errors.New("coupon no longer available")
	ErrCouponSoldOut  = errors.New("coupon sold out")
	ErrDuplicateCode  = errors.New("coupon code already exists")

	// Redemption errors
	ErrAlreadyRedeemed    = errors.New("coupon already redeemed")
	ErrInsufficientPoints = errors.New("insufficient reward points")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
