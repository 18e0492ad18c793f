package usecase

import (
	"context"
	"errors"
	"testing"

	"inspection_estimator/internal/domain/entities"
	mock_interfaces "inspection_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCheckoutUseCase_CreateCheckoutSession(t *testing.T) {
	t.Run("invalid origin", func(t *testing.T) {
		for _, origin := range []string{"", "  ", "not a url", "ftp://example.com", "/relative/path", "https://"} {
			uc := NewCheckoutUseCase(nil, nil)
			_, err := uc.CreateCheckoutSession(context.Background(), origin)
			if !errors.Is(err, ErrInvalidOrigin) || !errors.Is(err, ErrValidation) {
				t.Fatalf("origin %q: expected ErrInvalidOrigin, got %v", origin, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.CreateCheckoutSession(context.Background(), "https://example.com")
		if !errors.Is(err, ErrCheckoutGatewayNotConfigured) {
			t.Fatalf("expected ErrCheckoutGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("referer path is reduced to origin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(gateway, nil)

		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), entities.CheckoutRequest{OriginURL: "https://estimates.example.com:8443"}).
			Return(entities.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1", Provider: "stripe"}, nil)

		s, err := uc.CreateCheckoutSession(context.Background(), "https://estimates.example.com:8443/upload?step=2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "cs_1" || s.URL == "" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("provider error is upstream and keeps the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(gateway, nil)

		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("Invalid API Key provided"))

		_, err := uc.CreateCheckoutSession(context.Background(), "http://localhost:3000")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
		if err.Error() != "upstream service failure: Invalid API Key provided" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})
}
