package repository

import (
	"context"
	"fmt"

	"course-portal/internal/data/entity"
	"course-portal/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PurchaseRepository interface {
	// Create inserts a purchase. A second purchase of the same course by the same user yields ErrDuplicate.
	Create(ctx context.Context, purchase *entity.Purchase) error
	Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}

type purchaseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPurchaseRepository(db database.PgxIface, log *zap.Logger) PurchaseRepository {
	return &purchaseRepository{
		db:  db,
		log: log.With(zap.String("repository", "purchase")),
	}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, course_id, amount, currency, status, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		purchase.ID,
		purchase.UserID,
		purchase.CourseID,
		purchase.Amount,
		purchase.Currency,
		purchase.Status,
		purchase.PurchasedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("create purchase of course %s: %w", purchase.CourseID.String(), ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create purchase",
			zap.Error(err),
			zap.String("user_id", purchase.UserID.String()),
			zap.String("course_id", purchase.CourseID.String()),
		)
		return fmt.Errorf("create purchase of course %s: %w", purchase.CourseID.String(), err)
	}

	return nil
}

func (r *purchaseRepository) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE user_id = $1 AND course_id = $2 AND status = $3
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, courseID, entity.PurchaseStatusCompleted).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check purchase",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("course_id", courseID.String()),
		)
		return false, fmt.Errorf("check purchase of course %s: %w", courseID.String(), err)
	}

	return exists, nil
}

func (r *purchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	query := `
		SELECT id, user_id, course_id, amount, currency, status, purchased_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY purchased_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find purchases",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find purchases of user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	purchases := make([]*entity.Purchase, 0)
	for rows.Next() {
		var purchase entity.Purchase
		err := rows.Scan(
			&purchase.ID,
			&purchase.UserID,
			&purchase.CourseID,
			&purchase.Amount,
			&purchase.Currency,
			&purchase.Status,
			&purchase.PurchasedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan purchase row", zap.Error(err))
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		purchases = append(purchases, &purchase)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate purchase rows: %w", err)
	}

	return purchases, nil
}
