package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrCheckoutGatewayNotConfigured = errors.New("checkout gateway not configured")

// ICheckoutUseCase issues hosted checkout sessions for the paid estimate product.
type ICheckoutUseCase interface {
	CreateCheckoutSession(ctx context.Context, originURL string) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	gateway interfaces.ICheckoutGateway
	logger  *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.ICheckoutGateway, logger *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, logger: orNop(logger).Named("checkout")}
}

func (u *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, originURL string) (entities.CheckoutSession, error) {
	origin, err := normalizeOrigin(originURL)
	if err != nil {
		u.logger.Info("invalid origin", zap.String("origin", originURL))
		return entities.CheckoutSession{}, err
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrCheckoutGatewayNotConfigured
	}

	u.logger.Info("create start", zap.String("origin", origin))
	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutRequest{OriginURL: origin})
	if err != nil {
		u.logger.Warn("create failed", zap.String("origin", origin), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	u.logger.Info("create done", zap.String("session_id", session.ID), zap.String("provider", session.Provider))
	return session, nil
}

// normalizeOrigin keeps scheme and host of raw, dropping any path, so a Referer
// header can be used as an origin.
func normalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidOrigin
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidOrigin
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidOrigin
	}
	return u.Scheme + "://" + u.Host, nil
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
