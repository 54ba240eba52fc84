package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/internal/dto/request"
	"course-portal/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseService interface {
	ListPublicCourses(ctx context.Context) ([]response.CourseSummaryResponse, error)
	GetCourseSummary(ctx context.Context, courseID string) (*response.CourseSummaryResponse, error)
	// GetCourseDetail returns the full course, videos included, to buyers and admins.
	GetCourseDetail(ctx context.Context, caller Caller, courseID string) (*response.CourseDetailResponse, error)

	AdminListCourses(ctx context.Context) ([]response.CourseDetailResponse, error)
	AdminCreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseDetailResponse, error)
	AdminUpdateCourse(ctx context.Context, courseID string, req *request.CourseRequest) (*response.CourseDetailResponse, error)
	AdminDeleteCourse(ctx context.Context, courseID string) error
}

type courseDetailReader interface {
	GetPurchasedCourseDetail(ctx context.Context, caller Caller, courseID string) (*response.CourseDetailResponse, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	details    courseDetailReader
	log        *zap.Logger
	now        func() time.Time
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	details courseDetailReader,
	log *zap.Logger,
) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		details:    details,
		log:        log.With(zap.String("service", "course")),
		now:        time.Now,
	}
}

func (s *courseService) ListPublicCourses(ctx context.Context) ([]response.CourseSummaryResponse, error) {
	courses, err := s.courseRepo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return response.CoursesToSummaryResponse(courses), nil
}

func (s *courseService) GetCourseSummary(ctx context.Context, courseID string) (*response.CourseSummaryResponse, error) {
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

	resp := response.CourseToSummaryResponse(course)
	return &resp, nil
}

func (s *courseService) GetCourseDetail(ctx context.Context, caller Caller, courseID string) (*response.CourseDetailResponse, error) {
	return s.details.GetPurchasedCourseDetail(ctx, caller, courseID)
}

func (s *courseService) AdminListCourses(ctx context.Context) ([]response.CourseDetailResponse, error) {
	courses, err := s.courseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all courses: %w", err)
	}
	return response.CoursesToDetailResponse(courses), nil
}

func (s *courseService) AdminCreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseDetailResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create course validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	course := &entity.Course{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		IsActive: true,
	}
	applyCourseRequest(course, req)

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.log.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("title", course.Title),
		zap.Float64("price", course.Price))

	resp := response.CourseToDetailResponse(course)
	return &resp, nil
}

// AdminUpdateCourse replaces the course's mutable fields with the request.
func (s *courseService) AdminUpdateCourse(ctx context.Context, courseID string, req *request.CourseRequest) (*response.CourseDetailResponse, error) {
	id, err := parseID(courseID, "course")
	if err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		s.log.Warn("Update course validation failed", zap.Error(err))
		return nil, err
	}

	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, notFound("course")
	}

	applyCourseRequest(course, req)
	course.UpdatedAt = s.now()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("course")
		}
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.log.Info("Course updated",
		zap.String("course_id", course.ID.String()),
		zap.Bool("active", course.IsActive))

	resp := response.CourseToDetailResponse(course)
	return &resp, nil
}

// AdminDeleteCourse deactivates the course. Existing purchases are kept.
func (s *courseService) AdminDeleteCourse(ctx context.Context, courseID string) error {
	id, err := parseID(courseID, "course")
	if err != nil {
		return err
	}

	if err := s.courseRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("course")
		}
		return fmt.Errorf("delete course: %w", err)
	}

	s.log.Info("Course deleted", zap.String("course_id", id.String()))
	return nil
}

func applyCourseRequest(course *entity.Course, req *request.CourseRequest) {
	course.Title = strings.TrimSpace(req.Title)
	course.Description = strings.TrimSpace(req.Description)
	course.Instructor = strings.TrimSpace(req.Instructor)
	course.Category = req.Category
	course.Difficulty = req.Difficulty
	course.Duration = req.Duration
	course.Price = req.Price
	course.ImageURL = req.ImageURL

	course.Currency = strings.ToUpper(req.Currency)
	if course.Currency == "" {
		course.Currency = entity.DefaultCurrency
	}

	course.Videos = make([]entity.CourseVideo, 0, len(req.Videos))
	for _, v := range req.Videos {
		course.Videos = append(course.Videos, entity.CourseVideo{
			Title:       strings.TrimSpace(v.Title),
			VideoURL:    v.VideoURL,
			Description: v.Description,
		})
	}

	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
}
