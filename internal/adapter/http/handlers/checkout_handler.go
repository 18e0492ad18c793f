package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "inspection_estimator/internal/adapter/http/dto/response"
	"inspection_estimator/internal/usecase"
	"inspection_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler opens hosted checkout sessions.
type CheckoutHandler struct {
	usecase       usecase.ICheckoutUseCase
	publicBaseURL string
	logger        *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, publicBaseURL string, logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutHandler{
		usecase:       uc,
		publicBaseURL: strings.TrimSpace(publicBaseURL),
		logger:        logger.Named("checkout_handler"),
	}
}

// CreateCheckoutSession godoc
// @Summary      Create a checkout session
// @Description  Opens a hosted checkout for the cost estimate product. Redirect URLs are built from the request origin.
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /create-stripe-checkout [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	origin := h.resolveOrigin(c.Request)

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), origin)
	if err != nil {
		appErr := mapCheckoutError(err)
		h.logger.Warn("checkout failed", zap.String("origin", origin), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("checkout created", zap.String("session_id", session.ID), zap.String("provider", session.Provider))

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// resolveOrigin prefers the Origin header, then Referer, then the configured base URL.
// Browsers send the literal "null" for opaque origins.
func (h *CheckoutHandler) resolveOrigin(r *http.Request) string {
	if o := strings.TrimSpace(r.Header.Get("Origin")); o != "" && o != "null" {
		return o
	}
	if ref := strings.TrimSpace(r.Referer()); ref != "" {
		return ref
	}
	return h.publicBaseURL
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_FAILURE", "Payment provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrCheckoutGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_CONFIGURED", "Checkout is not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
