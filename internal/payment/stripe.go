package payment

import (
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

type StripePaymentProvider struct {
	webhookSecret string
	successUrl    string
	cancelUrl     string
}

func NewStripePaymentProvider(webhookSecret, successUrl, cancelUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		webhookSecret: webhookSecret,
		successUrl:    successUrl,
		cancelUrl:     cancelUrl,
	}
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	sessionID string,
	items []domain.CheckoutItem,
	expiresAt time.Time) (*stripe.CheckoutSession, error) {

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		lineItem := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyEUR)),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		ExpiresAt:  stripe.Int64(expiresAt.Unix()),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.cancelUrl),
		Metadata: map[string]string{
			"session_id": sessionID,
		},
	}

	return session.New(params)
}

func (s *StripePaymentProvider) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
}
