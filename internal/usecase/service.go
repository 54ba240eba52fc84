package usecase

import (
	"time"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Course   CourseService
	Purchase PurchaseService
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(subjectID uuid.UUID, role entity.UserRole) (string, time.Time, error)
}

// Caller identifies who is making a request, as established by the auth middleware.
type Caller struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

func NewService(repo *repository.Repository, tokens TokenIssuer, log *zap.Logger) *Service {
	purchase := NewPurchaseService(repo.Purchase, repo.Course, log)

	return &Service{
		Auth:     NewAuthService(repo.User, tokens, log),
		User:     NewUserService(repo.User, log),
		Course:   NewCourseService(repo.Course, purchase, log),
		Purchase: purchase,
	}
}

// parseID treats an id that is not a uuid like an id that does not exist.
func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound(what)
	}
	return id, nil
}
