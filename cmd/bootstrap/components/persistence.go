package components

import (
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/readstore"
	"dealvista/internal/infra/uow"
	"dealvista/internal/usecase/queries"
	"dealvista/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
		fx.Annotate(
			readstore.NewActivityReadStore,
			fx.As(new(queries.ActivityReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

// Read stores run against the pool directly; transactional repositories are
// created per transaction by the unit of work.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
