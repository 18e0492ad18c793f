package payments

import (
	"context"
	"strconv"
	"strings"
	"time"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const mockSessionPrefix = "mock_cs_"

// MockGateway fabricates paid sessions locally. Enabled by PAYMENT_GATEWAY_MOCK.
type MockGateway struct {
	provider string
	product  Product
	clock    func() time.Time
	log      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MockGateway)(nil)

func NewMockGateway(provider string, product Product, logger *zap.Logger) *MockGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("payments")
	logger.Info("mock mode enabled", zap.String("provider", provider))
	return &MockGateway{provider: provider, product: product, clock: time.Now, log: logger}
}

func (g *MockGateway) CreateCheckoutSession(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	id := mockSessionPrefix + strconv.FormatInt(g.clock().UTC().UnixNano(), 10)
	g.log.Info("mock create success", zap.String("session_id", id))
	return entities.CheckoutSession{
		ID:            id,
		Provider:      g.provider,
		URL:           strings.TrimRight(req.OriginURL, "/") + "/success?session_id=" + id,
		PaymentStatus: entities.CheckoutPaymentStatusUnpaid,
		AmountTotal:   g.product.UnitAmount,
		Currency:      strings.ToLower(g.product.Currency),
	}, nil
}

// GetCheckoutSession reports every session it issued as paid.
func (g *MockGateway) GetCheckoutSession(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSession{}, ErrMissingSessionID
	}
	status := entities.CheckoutPaymentStatusUnpaid
	if strings.HasPrefix(sessionID, mockSessionPrefix) {
		status = entities.CheckoutPaymentStatusPaid
	}
	return entities.CheckoutSession{
		ID:            sessionID,
		Provider:      g.provider,
		PaymentStatus: status,
		AmountTotal:   g.product.UnitAmount,
		Currency:      strings.ToLower(g.product.Currency),
	}, nil
}
