package order

// Pricing works in exact integer arithmetic: amounts are fixed-point cents
// and rates are basis points, so intermediate values are integers scaled by
// 10_000 and rounding (half-up) happens once per reported figure. No binary
// floating point touches money.

const bpDenominator = 10_000

type LinePrice struct {
	UnitPriceCents int64
	Quantity       int32
}

type Quote struct {
	Subtotal   Money
	Discount   Money
	ServiceFee Money
	Total      Money
}

// NewQuote prices a set of line items. The discount applies to the subtotal
// only; the service fee is computed on the pre-discount subtotal.
func NewQuote(lines []LinePrice, discountBp, serviceFeeBp int32) Quote {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}

	// Scaled by bpDenominator until the final rounding.
	discountScaled := subtotal * int64(discountBp)
	feeScaled := subtotal * int64(serviceFeeBp)
	totalScaled := subtotal*bpDenominator - discountScaled + feeScaled

	return Quote{
		Subtotal:   NewMoney(subtotal),
		Discount:   NewMoney(roundHalfUp(discountScaled)),
		ServiceFee: NewMoney(roundHalfUp(feeScaled)),
		Total:      NewMoney(roundHalfUp(totalScaled)),
	}
}

func roundHalfUp(scaled int64) int64 {
	return (scaled + bpDenominator/2) / bpDenominator
}
