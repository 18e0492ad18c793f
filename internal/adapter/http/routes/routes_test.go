package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inspection_estimator/internal/adapter/http/handlers"
	"inspection_estimator/internal/adapter/http/handlers/mocks"
	"inspection_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
	reportUC := mocks.NewMockIReportUseCase(ctrl)
	router := NewRouter(nil, Handlers{
		Report:   handlers.NewReportHandler(reportUC, 0, nil),
		Checkout: handlers.NewCheckoutHandler(checkoutUC, "https://estimates.example.com", nil),
	})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("checkout route", func(t *testing.T) {
		checkoutUC.EXPECT().CreateCheckoutSession(gomock.Any(), "https://estimates.example.com").
			Return(entities.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/create-stripe-checkout", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("process report route is registered", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/process-report", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty submission, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
