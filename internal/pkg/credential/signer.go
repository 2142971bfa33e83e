// Package credential signs and verifies ticket redemption tokens. A signed
// token binds the ticket id, its redemption code, the offering it belongs to
// and the order that paid for it, so a scanned QR can be verified offline
// against the signing key alone.
package credential

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidCredential = errors.New("invalid ticket credential")

type Claims struct {
	Code    string    `json:"code"`
	BatchID uuid.UUID `json:"batch_id"`
	OrderID uuid.UUID `json:"order_id"`
	jwt.RegisteredClaims
}

func (c *Claims) TicketID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Signer interface {
	Sign(ticketID uuid.UUID, code string, batchID, orderID uuid.UUID) (string, error)
	Verify(token string) (*Claims, error)
}

type hmacSigner struct {
	secretKey []byte
}

func NewSigner(secretKey string) Signer {
	return &hmacSigner{secretKey: []byte(secretKey)}
}

func (s *hmacSigner) Sign(ticketID uuid.UUID, code string, batchID, orderID uuid.UUID) (string, error) {
	claims := Claims{
		Code:    code,
		BatchID: batchID,
		OrderID: orderID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  ticketID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			// Redemption tokens do not expire; a ticket is valid until used.
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *hmacSigner) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredential
	}
	if _, err := claims.TicketID(); err != nil {
		return nil, ErrInvalidCredential
	}

	return claims, nil
}
