package components

import (
	"ticketera/internal/fulfillment"
	"ticketera/internal/infra/db"
	"ticketera/internal/infra/readstore"
	"ticketera/internal/infra/repository"
	"ticketera/internal/infra/uow"
	"ticketera/internal/usecase/commands"
	"ticketera/internal/usecase/queries"
	"ticketera/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Pool-bound repositories for work outside a reservation transaction:
// post-commit ticket minting, webhook lookups, the housekeeping sweep and
// the outbox claim loop.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		fx.Annotate(
			repository.NewTicketRepository,
			fx.As(new(shared.TicketRepository)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(fulfillment.OutboxStore)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
			fx.As(new(commands.OwnershipReads)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketViewRepo)),
		),
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(queries.PromoViewRepo)),
		),
		fx.Annotate(
			readstore.NewDeliveryReadStore,
			fx.As(new(fulfillment.DeliveryReads)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
