package components

import (
	"context"

	"ticketera/internal/fulfillment"
	"ticketera/internal/infra/notification"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/config"
	"ticketera/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewEmailSender,
		notification.NewWhatsAppSender,
		NewDispatcher,
		NewWorker,
	),
	fx.Invoke(StartWorker),
)

func NewEmailSender(cfg config.Config) notification.EmailSender {
	return notification.NewEmailSender(cfg.SMTP)
}

func NewDispatcher(
	cfg config.Config,
	outbox fulfillment.OutboxStore,
	reads fulfillment.DeliveryReads,
	email notification.EmailSender,
	whatsapp notification.WhatsAppSender,
	clk clock.Clock,
) *fulfillment.Dispatcher {
	return fulfillment.NewDispatcher(outbox, reads, email, whatsapp, clk, cfg.Worker)
}

func NewWorker(cfg config.Config, dispatcher *fulfillment.Dispatcher, orderCommands commands.OrderCommands) (*fulfillment.Worker, error) {
	return fulfillment.NewWorker(dispatcher, orderCommands, cfg.Worker)
}

func StartWorker(lc fx.Lifecycle, worker *fulfillment.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return worker.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			return worker.Stop()
		},
	})
}
