package response

import (
	"ticketera/internal/usecase/queries"

	"github.com/google/uuid"
)

type MyTicketResponse struct {
	ID        uuid.UUID `json:"id"`
	EventName string    `json:"event_name"`
	BatchName string    `json:"batch_name"`
	SeatLabel *string   `json:"seat_label,omitempty"`
	IsUsed    bool      `json:"is_used"`
	Token     *string   `json:"token,omitempty"`
	QRCode    *string   `json:"qr_code,omitempty"`
}

func FromTicketView(view *queries.TicketView) *MyTicketResponse {
	return &MyTicketResponse{
		ID:        view.ID,
		EventName: view.EventName,
		BatchName: view.BatchName,
		SeatLabel: view.SeatLabel,
		IsUsed:    view.IsUsed,
		Token:     view.Token,
		QRCode:    view.QRCode,
	}
}

type ScanResponse struct {
	Valid     bool      `json:"valid"`
	TicketID  uuid.UUID `json:"ticket_id"`
	EventName string    `json:"event_name"`
	BatchName string    `json:"batch_name"`
	SeatLabel *string   `json:"seat_label,omitempty"`
	Customer  string    `json:"customer"`
	IsUsed    bool      `json:"is_used"`
}

func FromScanView(view *queries.TicketScanView) *ScanResponse {
	return &ScanResponse{
		Valid:     !view.IsUsed,
		TicketID:  view.TicketID,
		EventName: view.EventName,
		BatchName: view.BatchName,
		SeatLabel: view.SeatLabel,
		Customer:  view.Customer,
		IsUsed:    view.IsUsed,
	}
}
