package domain

import (
	"time"

	"github.com/stripe/stripe-go/v82"
)

// CheckoutItem is one line item of a checkout session: a single seat,
// quantity is always one.
type CheckoutItem struct {
	Description string
	UnitAmount  int64 // cents
}

type PaymentProvider interface {
	CreateCheckoutSession(sessionID string, items []CheckoutItem, expiresAt time.Time) (*stripe.CheckoutSession, error)

	// VerifyWebhook checks the notification's signature before the payload
	// may be trusted.
	VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error)
}
