package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PurchaseService interface {
	// Purchase records that userID bought courseID. Payment is not collected;
	// every purchase completes immediately.
	Purchase(ctx context.Context, userID uuid.UUID, courseID string) (*response.PurchaseResponse, error)
	ListMyCourses(ctx context.Context, userID uuid.UUID) ([]response.CourseDetailResponse, error)
	ListMyPurchases(ctx context.Context, userID uuid.UUID) ([]response.PurchaseResponse, error)
	GetPurchasedCourseDetail(ctx context.Context, caller Caller, courseID string) (*response.CourseDetailResponse, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	courseRepo   repository.CourseRepository
	log          *zap.Logger
	now          func() time.Time
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	courseRepo repository.CourseRepository,
	log *zap.Logger,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		courseRepo:   courseRepo,
		log:          log.With(zap.String("service", "purchase")),
		now:          time.Now,
	}
}

func (s *purchaseService) Purchase(ctx context.Context, userID uuid.UUID, courseID string) (*response.PurchaseResponse, error) {
	id, err := parseID(courseID, "course")
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil || !course.IsActive {
		return nil, notFound("course")
	}

	owned, err := s.purchaseRepo.Exists(ctx, userID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("check purchase: %w", err)
	}
	if owned {
		return nil, newError(ErrAlreadyPurchased, "course already purchased")
	}

	purchase := &entity.Purchase{
		ID:          uuid.New(),
		UserID:      userID,
		CourseID:    course.ID,
		Amount:      course.Price,
		Currency:    course.Currency,
		Status:      entity.PurchaseStatusCompleted,
		PurchasedAt: s.now(),
	}

	// the unique (user_id, course_id) constraint settles concurrent submissions
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrAlreadyPurchased, "course already purchased")
		}
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	s.log.Info("Course purchased",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("course_id", course.ID.String()),
		zap.Float64("amount", purchase.Amount),
		zap.String("currency", purchase.Currency),
		zap.Bool("free", course.IsFree()))

	resp := response.PurchaseToResponse(purchase)
	return &resp, nil
}

func (s *purchaseService) ListMyCourses(ctx context.Context, userID uuid.UUID) ([]response.CourseDetailResponse, error) {
	courses, err := s.courseRepo.FindPurchasedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchased courses: %w", err)
	}
	return response.CoursesToDetailResponse(courses), nil
}

func (s *purchaseService) ListMyPurchases(ctx context.Context, userID uuid.UUID) ([]response.PurchaseResponse, error) {
	purchases, err := s.purchaseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return response.PurchasesToResponse(purchases), nil
}

// GetPurchasedCourseDetail shows the course content to admins and to users who
// bought it. A non-admin is told about a missing purchase before a missing course.
func (s *purchaseService) GetPurchasedCourseDetail(ctx context.Context, caller Caller, courseID string) (*response.CourseDetailResponse, error) {
	id, err := parseID(courseID, "course")
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		owned, err := s.purchaseRepo.Exists(ctx, caller.UserID, id)
		if err != nil {
			return nil, fmt.Errorf("check purchase: %w", err)
		}
		if !owned {
			return nil, newError(ErrForbidden, "you have not purchased this course")
		}
	}

	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil || (!course.IsActive && !caller.IsAdmin()) {
		return nil, notFound("course")
	}

	resp := response.CourseToDetailResponse(course)
	return &resp, nil
}
