package notification

import (
	"context"
	"fmt"
	"io"

	"ticketera/internal/pkg/config"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/qr"

	"gopkg.in/gomail.v2"
)

// TicketEmail is one rendered delivery to a buyer.
type TicketEmail struct {
	To          string
	Customer    string
	EventName   string
	BatchName   string
	SeatLabel   *string
	SignedToken string
}

type EmailSender interface {
	SendTicket(ctx context.Context, msg TicketEmail) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailSender(cfg config.SMTPConfig) EmailSender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) SendTicket(_ context.Context, msg TicketEmail) error {
	png, err := qr.PNG(msg.SignedToken, 256)
	if err != nil {
		return errs.Wrap(err, "failed to render ticket QR attachment")
	}

	seat := "General admission"
	if msg.SeatLabel != nil {
		seat = "Seat " + *msg.SeatLabel
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", fmt.Sprintf("Your ticket for %s", msg.EventName))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Here is your ticket for <b>%s</b> (%s, %s).</p>"+
			"<p>Show the attached QR code at the door.</p>",
		msg.Customer, msg.EventName, msg.BatchName, seat))
	m.Embed("ticket.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(png)
		return err
	}))

	if err := s.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send ticket email")
	}
	return nil
}
