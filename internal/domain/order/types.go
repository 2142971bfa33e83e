package order

type Status string

const (
	// StatusPending: instant-payment order awaiting provider confirmation.
	StatusPending Status = "PENDING"
	// StatusPendingApproval: offline-payment order awaiting producer approval.
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusPaid            Status = "PAID"
	StatusRejected        Status = "REJECTED"
	StatusRefunded        Status = "REFUNDED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingApproval, StatusPaid, StatusRejected, StatusRefunded:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodMercadoPago  PaymentMethod = "MercadoPago"
	MethodBankTransfer PaymentMethod = "Cash / Bank Transfer"
)

func (m PaymentMethod) String() string { return string(m) }

// IsOffline reports whether the method requires manual producer approval
// instead of instant payment confirmation.
func (m PaymentMethod) IsOffline() bool {
	return m == MethodBankTransfer
}
