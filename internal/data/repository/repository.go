package repository

import (
	"errors"

	"course-portal/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when an insert hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned by writes that matched no row. Lookups return (nil, nil) instead.
	ErrNotFound = errors.New("record not found")
)

type Repository struct {
	User     UserRepository
	Course   CourseRepository
	Purchase PurchaseRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Course:   NewCourseRepository(db, log),
		Purchase: NewPurchaseRepository(db, log),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
