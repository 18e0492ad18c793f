package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

type preferenceAPI interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
	Get(ctx context.Context, id string) (*preference.Response, error)
}

// MercadoPagoGateway sells the estimate through Checkout Pro preferences. A
// preference carries no payment state, so looked-up sessions report unknown.
type MercadoPagoGateway struct {
	client  preferenceAPI
	product Product
	log     *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, product Product, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("mercadopago")

	if strings.TrimSpace(accessToken) == "" {
		logger.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")
	return newMercadoPagoGateway(preference.NewClient(cfg), product, logger), nil
}

func newMercadoPagoGateway(client preferenceAPI, product Product, logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, product: product, log: logger}
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	origin := strings.TrimRight(req.OriginURL, "/")
	pref := preference.Request{
		Items: []preference.ItemRequest{{
			Title:       g.product.Name,
			Description: g.product.Description,
			Quantity:    1,
			UnitPrice:   float64(g.product.UnitAmount) / 100,
			CurrencyID:  strings.ToUpper(g.product.Currency),
		}},
		BackURLs: &preference.BackURLsRequest{
			Success: origin + "/success",
			Failure: origin + "/cancel",
			Pending: origin + "/cancel",
		},
	}

	g.log.Info("create start", zap.String("origin", origin))
	resp, err := g.client.Create(ctx, pref)
	if err != nil {
		g.log.Warn("sdk create failed", zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("mercadopago: create preference: %w", err)
	}
	g.log.Info("create success", zap.String("preference_id", resp.ID))

	return entities.CheckoutSession{
		ID:            resp.ID,
		Provider:      ProviderMercadoPago,
		URL:           resp.InitPoint,
		PaymentStatus: entities.CheckoutPaymentStatusUnknown,
		AmountTotal:   g.product.UnitAmount,
		Currency:      strings.ToLower(g.product.Currency),
	}, nil
}

func (g *MercadoPagoGateway) GetCheckoutSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrMissingSessionID
	}
	resp, err := g.client.Get(ctx, sessionID)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("mercadopago: get preference: %w", err)
	}
	return entities.CheckoutSession{
		ID:            resp.ID,
		Provider:      ProviderMercadoPago,
		URL:           resp.InitPoint,
		PaymentStatus: entities.CheckoutPaymentStatusUnknown,
		AmountTotal:   g.product.UnitAmount,
		Currency:      strings.ToLower(g.product.Currency),
	}, nil
}
