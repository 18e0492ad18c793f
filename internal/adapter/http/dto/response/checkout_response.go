package response

import "inspection_estimator/internal/domain/entities"

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{SessionID: s.ID, URL: s.URL}
}
