package uow

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"dealvista/internal/infra/repository"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 3
	initialBackoff = 10 * time.Millisecond
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// Within runs fn in a READ COMMITTED transaction and retries it on
// serialization failures and deadlocks. fn must be safe to re-run from
// scratch.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction cancelled during retry backoff")
			case <-time.After(backoff + jitter(backoff)):
			}
		}

		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		lastErr = err
	}

	return errs.Wrap(lastErr, "transaction failed after retries")
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, newPgTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// pgTx binds all repositories to a single pgx transaction. Repositories are
// created lazily so a transaction only pays for the ones it touches.
type pgTx struct {
	tx pgx.Tx

	users       *repository.UserRepository
	coupons     *repository.CouponRepository
	redemptions *repository.RedemptionRepository
	activity    *repository.ActivityLogRepository
}

func newPgTx(tx pgx.Tx) *pgTx {
	return &pgTx{tx: tx}
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.tx)
	}
	return t.users
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.coupons == nil {
		t.coupons = repository.NewCouponRepository(t.tx)
	}
	return t.coupons
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptions == nil {
		t.redemptions = repository.NewRedemptionRepository(t.tx)
	}
	return t.redemptions
}

func (t *pgTx) ActivityLogs() shared.ActivityLogRepository {
	if t.activity == nil {
		t.activity = repository.NewActivityLogRepository(t.tx)
	}
	return t.activity
}

// 40001: serialization_failure, 40P01: deadlock_detected
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(d)))
	if err != nil {
		return 0
	}
	return time.Duration(n.Int64())
}
