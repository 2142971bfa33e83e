package order

import "strings"

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
	DocID string
}

// Normalized trims whitespace and fills guest defaults; guest checkout is
// allowed, so a missing name or email falls back to placeholder values.
func (c CustomerInfo) Normalized() CustomerInfo {
	out := CustomerInfo{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
		DocID: strings.TrimSpace(c.DocID),
	}
	if out.Name == "" {
		out.Name = "Guest"
	}
	if out.Email == "" {
		out.Email = "guest@example.com"
	}
	return out
}
