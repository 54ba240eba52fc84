package entity

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string

// Purchases are auto-approved, so completed is the only state.
const (
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// Purchase is append-only: created by the purchase flow, never updated or deleted.
type Purchase struct {
	ID          uuid.UUID      `db:"id"`
	UserID      uuid.UUID      `db:"user_id"`
	CourseID    uuid.UUID      `db:"course_id"`
	Amount      float64        `db:"amount"` // course price at purchase time
	Currency    string         `db:"currency"`
	Status      PurchaseStatus `db:"status"`
	PurchasedAt time.Time      `db:"purchased_at"`
}
