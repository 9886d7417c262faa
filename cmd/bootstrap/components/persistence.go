package components

import (
	"bookit/internal/infra/cache"
	"bookit/internal/infra/readstore"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/infra/uow"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Experience
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExperienceReadQueries)),
		),
		NewExperienceReadStore,
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Promo
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromoReadQueries)),
		),
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(queries.PromoReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewExperienceReadStore puts the read-through cache in front of PostgreSQL.
func NewExperienceReadStore(q readstore.ExperienceReadQueries, db sqlc.DBTX, c cache.Cache) queries.ExperienceReadStore {
	return cache.NewExperienceStore(readstore.NewExperienceReadStore(q, db), c)
}
