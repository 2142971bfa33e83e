package queries

import (
	"context"
	"log/slog"

	"ticketera/internal/infra"
	"ticketera/internal/pkg/credential"
	"ticketera/internal/pkg/errs"
	"ticketera/internal/pkg/identity"
	"ticketera/internal/pkg/qr"

	"github.com/google/uuid"
)

var ErrInvalidCredential = errs.New("invalid ticket credential")

type TicketView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	OrderID   uuid.UUID `json:"order_id"`
	BatchID   uuid.UUID `json:"batch_id"`
	EventName string    `json:"event_name"`
	BatchName string    `json:"batch_name"`
	SeatLabel *string   `json:"seat_label,omitempty"`
	IsUsed    bool      `json:"is_used"`
	Token     *string   `json:"token,omitempty"`
	QRCode    *string   `json:"qr_code,omitempty"`
}

// TicketScanView is what the door scanner sees after a credential check.
type TicketScanView struct {
	TicketID  uuid.UUID `json:"ticket_id"`
	EventName string    `json:"event_name"`
	BatchName string    `json:"batch_name"`
	SeatLabel *string   `json:"seat_label,omitempty"`
	Customer  string    `json:"customer"`
	IsUsed    bool      `json:"is_used"`
}

// TicketRedemptionRow carries the ownership data the scan check needs on
// top of the public view.
type TicketRedemptionRow struct {
	Scan       TicketScanView
	Code       string
	ProducerID uuid.UUID
	OrderPaid  bool
}

type TicketQueries interface {
	// ListMine returns the caller's tickets from paid orders. Credentials
	// missing a signed token are signed on first read.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
	ValidateCredential(ctx context.Context, token string, actorID uuid.UUID, role identity.Role) (*TicketScanView, error)
}

type TicketViewRepo interface {
	FindPaidByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
	FindRedemptionByID(ctx context.Context, ticketID uuid.UUID) (*TicketRedemptionRow, error)
	SetSignedToken(ctx context.Context, ticketID uuid.UUID, token string) error
}

type ticketQueriesImpl struct {
	repo   TicketViewRepo
	signer credential.Signer
}

func NewTicketQueries(repo TicketViewRepo, signer credential.Signer) TicketQueries {
	return &ticketQueriesImpl{repo: repo, signer: signer}
}

func (q *ticketQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*TicketView, error) {
	views, err := q.repo.FindPaidByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		if v.Token == nil {
			token, err := q.signer.Sign(v.ID, v.Code, v.BatchID, v.OrderID)
			if err != nil {
				slog.Error("failed to sign ticket credential on read", "ticket_id", v.ID, "error", err.Error())
				continue
			}
			if err := q.repo.SetSignedToken(ctx, v.ID, token); err != nil {
				slog.Error("failed to persist ticket credential on read", "ticket_id", v.ID, "error", err.Error())
				continue
			}
			v.Token = &token
		}
		if dataURL, err := qr.DataURL(*v.Token); err == nil {
			v.QRCode = &dataURL
		}
	}
	return views, nil
}

// ValidateCredential verifies the token signature and binds it back to the
// stored ticket. A producer can only scan tickets for their own events; the
// failure is reported as NotFound so foreign credentials reveal nothing.
func (q *ticketQueriesImpl) ValidateCredential(ctx context.Context, token string, actorID uuid.UUID, role identity.Role) (*TicketScanView, error) {
	claims, err := q.signer.Verify(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredential)
	}

	ticketID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredential)
	}

	row, err := q.repo.FindRedemptionByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// The code claim ties the token to this exact ticket row; a signed
	// token for a deleted-and-reissued ticket must not validate.
	if row.Code != claims.Code {
		return nil, ErrInvalidCredential
	}
	if !row.OrderPaid {
		return nil, ErrInvalidCredential
	}
	if role != identity.RoleAdmin && row.ProducerID != actorID {
		return nil, ErrNotFound
	}

	return &row.Scan, nil
}
