package components

import (
	"airtime/internal/infra/db"
	"airtime/internal/infra/readstore"
	"airtime/internal/infra/uow"
	"airtime/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		fx.Annotate(
			readstore.NewStationReadStore,
			fx.As(new(queries.StationViewRepo)),
		),
		fx.Annotate(
			readstore.NewRJReadStore,
			fx.As(new(queries.RJViewRepo)),
		),
		fx.Annotate(
			readstore.NewAdContentReadStore,
			fx.As(new(queries.AdContentViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
