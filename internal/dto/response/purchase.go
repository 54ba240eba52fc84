package response

import (
	"time"

	"course-portal/internal/data/entity"
)

type PurchaseResponse struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id"`
	CourseID    string                `json:"course_id"`
	Amount      float64               `json:"amount"`
	Currency    string                `json:"currency"`
	Status      entity.PurchaseStatus `json:"status"`
	PurchasedAt time.Time             `json:"purchased_at"`
}

func PurchaseToResponse(purchase *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:          purchase.ID.String(),
		UserID:      purchase.UserID.String(),
		CourseID:    purchase.CourseID.String(),
		Amount:      purchase.Amount,
		Currency:    purchase.Currency,
		Status:      purchase.Status,
		PurchasedAt: purchase.PurchasedAt,
	}
}

func PurchasesToResponse(purchases []*entity.Purchase) []PurchaseResponse {
	resp := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, PurchaseToResponse(p))
	}
	return resp
}
