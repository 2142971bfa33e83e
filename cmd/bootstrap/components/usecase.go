package components

import (
	"ticketera/internal/infra/payment"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/credential"
	"ticketera/internal/usecase/commands"
	"ticketera/internal/usecase/queries"
	"ticketera/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPaymentProvider,
		fx.As(new(commands.PaymentProvider)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewTicketQueries,
		queries.NewPromoQueries,
	),
)

func NewPaymentProvider(cfg config.Config) *payment.MercadoPagoProvider {
	return payment.NewMercadoPagoProvider(cfg.Payment.CheckoutBaseURL)
}

func NewOrderCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	orders shared.OrderRepository,
	tickets shared.TicketRepository,
	payments commands.PaymentProvider,
	ownership commands.OwnershipReads,
	signer credential.Signer,
	clk clock.Clock,
) commands.OrderCommands {
	return commands.NewOrderUseCase(
		uow,
		orders,
		tickets,
		payments,
		ownership,
		signer,
		clk,
		cfg.Pricing.ServiceFeeBasisPoints,
		cfg.Worker.PendingOrderTTL,
	)
}
