package notification

import (
	"context"
	"log/slog"
)

// TicketMessage is a short-form delivery for messaging channels.
type TicketMessage struct {
	Phone     string
	Customer  string
	EventName string
	Link      string
}

type WhatsAppSender interface {
	SendTicket(ctx context.Context, msg TicketMessage) error
}

// logWhatsAppSender stands in until a messaging provider is contracted.
// Jobs are marked sent so they do not pile up as failures.
type logWhatsAppSender struct{}

func NewWhatsAppSender() WhatsAppSender {
	return &logWhatsAppSender{}
}

func (s *logWhatsAppSender) SendTicket(_ context.Context, msg TicketMessage) error {
	slog.Info("whatsapp delivery (stub)",
		"phone", msg.Phone,
		"customer", msg.Customer,
		"event", msg.EventName)
	return nil
}
