package payment

import (
	"context"
	"fmt"
	"log/slog"

	"ticketera/internal/domain/order"
	"ticketera/internal/usecase/commands"

	"github.com/google/uuid"
)

const applicationFeeBp = 1000 // 10% marketplace cut, informational only

// MercadoPagoProvider creates checkout preferences. The current
// implementation fabricates the preference locally; swapping in the real
// SDK call only changes GeneratePaymentLink.
type MercadoPagoProvider struct {
	checkoutBaseURL string
}

func NewMercadoPagoProvider(checkoutBaseURL string) *MercadoPagoProvider {
	return &MercadoPagoProvider{checkoutBaseURL: checkoutBaseURL}
}

var _ commands.PaymentProvider = (*MercadoPagoProvider)(nil)

func (p *MercadoPagoProvider) GeneratePaymentLink(ctx context.Context, o *order.Order) (*commands.PaymentLink, error) {
	preferenceID := uuid.NewString()

	appFeeCents := o.Total().Cents() * applicationFeeBp / 10_000
	slog.Info("created payment preference",
		"order_id", o.ID(),
		"preference_id", preferenceID,
		"total_cents", o.Total().Cents(),
		"application_fee_cents", appFeeCents)

	return &commands.PaymentLink{
		URL:       fmt.Sprintf("%s/checkout?pref_id=%s", p.checkoutBaseURL, preferenceID),
		PaymentID: preferenceID,
	}, nil
}
