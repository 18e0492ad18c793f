package interfaces

import (
	"context"
	"inspection_estimator/internal/domain/entities"
)

// ICheckoutGateway abstracts external payment providers (Stripe, Mercado Pago).
//
// The service uses it to open a hosted checkout before a report can be generated,
// and to read back the session's payment state when a submission arrives.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
}
