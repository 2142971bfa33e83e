package fulfillment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ticketera/internal/infra/notification"
	"ticketera/internal/infra/repository"
	"ticketera/internal/pkg/clock"
	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/usecase/commands"

	"github.com/google/uuid"
)

// TicketDeliveryInfo is everything one delivery job needs, joined in a
// single read.
type TicketDeliveryInfo struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventName     string
	BatchName     string
	SeatLabel     *string
	SignedToken   *string
}

type DeliveryReads interface {
	FindTicketDelivery(ctx context.Context, ticketID uuid.UUID) (*TicketDeliveryInfo, error)
}

// OutboxStore is the claim/ack surface of the notification_jobs table.
type OutboxStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]repository.Job, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, maxAttempts int32) error
}

// Dispatcher drains the outbox. Each tick claims a batch of due jobs with
// SKIP LOCKED, so multiple instances can run side by side.
type Dispatcher struct {
	outbox   OutboxStore
	reads    DeliveryReads
	email    notification.EmailSender
	whatsapp notification.WhatsAppSender
	clock    clock.Clock
	cfg      config.WorkerConfig
}

func NewDispatcher(
	outbox OutboxStore,
	reads DeliveryReads,
	email notification.EmailSender,
	whatsapp notification.WhatsAppSender,
	clk clock.Clock,
	cfg config.WorkerConfig,
) *Dispatcher {
	return &Dispatcher{
		outbox:   outbox,
		reads:    reads,
		email:    email,
		whatsapp: whatsapp,
		clock:    clk,
		cfg:      cfg,
	}
}

// RunOnce claims and processes one batch. Returns the number of jobs
// handled, failures included.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	jobs, err := d.outbox.ClaimDue(ctx, d.clock.Now(), d.cfg.DispatchBatch)
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		if err := d.dispatch(ctx, job); err != nil {
			retryAt := d.clock.Now().Add(d.retryDelay(job.Attempts))
			slog.Warn("notification job failed",
				"job_id", job.ID, "topic", job.Topic, "attempt", job.Attempts, "error", err.Error())
			if markErr := d.outbox.MarkFailed(ctx, job.ID, err.Error(), retryAt, d.cfg.MaxAttempts); markErr != nil {
				slog.Error("failed to record job failure", "job_id", job.ID, "error", markErr.Error())
			}
			continue
		}
		if err := d.outbox.MarkSent(ctx, job.ID); err != nil {
			slog.Error("failed to mark job sent", "job_id", job.ID, "error", err.Error())
		}
	}
	return len(jobs), nil
}

func (d *Dispatcher) dispatch(ctx context.Context, job repository.Job) error {
	if job.Kind != commands.JobKindTicketDelivery {
		return errs.New("unknown job kind: " + job.Kind)
	}

	var payload commands.DeliveryJob
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Wrap(err, "malformed job payload")
	}

	info, err := d.reads.FindTicketDelivery(ctx, payload.TicketID)
	if err != nil {
		return err
	}
	if info.SignedToken == nil {
		// Confirmation signs before enqueueing; a nil token here means the
		// row was tampered with or the job raced a rejection.
		return errs.New("ticket has no signed credential")
	}

	switch job.Topic {
	case commands.TopicEmail:
		return d.email.SendTicket(ctx, notification.TicketEmail{
			To:          info.CustomerEmail,
			Customer:    info.CustomerName,
			EventName:   info.EventName,
			BatchName:   info.BatchName,
			SeatLabel:   info.SeatLabel,
			SignedToken: *info.SignedToken,
		})
	case commands.TopicWhatsApp:
		return d.whatsapp.SendTicket(ctx, notification.TicketMessage{
			Phone:     info.CustomerPhone,
			Customer:  info.CustomerName,
			EventName: info.EventName,
		})
	default:
		return errs.New("unknown job topic: " + job.Topic)
	}
}

func (d *Dispatcher) retryDelay(attempts int32) time.Duration {
	delay := time.Duration(1<<min(attempts, 6)) * time.Minute
	return delay
}
