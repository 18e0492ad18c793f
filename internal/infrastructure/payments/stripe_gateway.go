package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

const ProviderStripe = "stripe"

var (
	ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingSessionID       = errors.New("missing checkout session id")
)

type stripeSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Product is the single line item sold by the checkout.
type Product struct {
	Name        string
	Description string
	UnitAmount  int64
	Currency    string
}

type StripeGatewayConfig struct {
	SecretKey string
	Product   Product
	Backends  *stripe.Backends
	// Sessions replaces the Stripe API client, for tests.
	Sessions stripeSessionAPI
}

type StripeGateway struct {
	sessions stripeSessionAPI
	product  Product
	log      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeGatewayConfig, logger *zap.Logger) (*StripeGateway, error) {
	sessions := cfg.Sessions
	if sessions == nil {
		key := strings.TrimSpace(cfg.SecretKey)
		if key == "" {
			return nil, ErrMissingStripeSecretKey
		}
		sessions = client.New(key, cfg.Backends).CheckoutSessions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StripeGateway{sessions: sessions, product: cfg.Product, log: logger.Named("stripe")}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	success, cancel := checkoutURLs(req.OriginURL)
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(success),
		CancelURL:  stripe.String(cancel),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(g.product.Currency)),
				UnitAmount: stripe.Int64(g.product.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(g.product.Name),
				},
			},
		}},
	}
	if g.product.Description != "" {
		params.LineItems[0].PriceData.ProductData.Description = stripe.String(g.product.Description)
	}
	params.Context = ctx

	g.log.Info("payments.stripe.session.create", zap.String("success_url", success))
	s, err := g.sessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("stripe: create checkout session: %s", stripeMessage(err))
	}
	g.log.Info("payments.stripe.session.created", zap.String("session_id", s.ID))
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrMissingSessionID
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("stripe: get checkout session: %s", stripeMessage(err))
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripe.CheckoutSession) entities.CheckoutSession {
	out := entities.CheckoutSession{
		ID:            s.ID,
		Provider:      ProviderStripe,
		URL:           s.URL,
		PaymentStatus: entities.CheckoutPaymentStatusUnknown,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
	}
	switch s.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		out.PaymentStatus = entities.CheckoutPaymentStatusPaid
	case stripe.CheckoutSessionPaymentStatusUnpaid:
		out.PaymentStatus = entities.CheckoutPaymentStatusUnpaid
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}

// stripeMessage returns the human readable part of a Stripe API error; the
// error's own Error() is a JSON document.
func stripeMessage(err error) string {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return se.Msg
	}
	return err.Error()
}

// checkoutURLs builds the redirect targets. {CHECKOUT_SESSION_ID} is substituted by Stripe.
func checkoutURLs(origin string) (success, cancel string) {
	origin = strings.TrimRight(origin, "/")
	return origin + "/success?session_id={CHECKOUT_SESSION_ID}", origin + "/cancel"
}
