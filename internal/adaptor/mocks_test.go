package adaptor

import (
	"context"

	"course-portal/internal/dto/request"
	"course-portal/internal/dto/response"
	"course-portal/internal/usecase"
	"course-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, config utils.AdminConfig) error {
	return m.Called(ctx, config).Error(0)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) ListPublicCourses(ctx context.Context) ([]response.CourseSummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.CourseSummaryResponse), args.Error(1)
}

func (m *MockCourseService) GetCourseSummary(ctx context.Context, courseID string) (*response.CourseSummaryResponse, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CourseSummaryResponse), args.Error(1)
}

func (m *MockCourseService) GetCourseDetail(ctx context.Context, caller usecase.Caller, courseID string) (*response.CourseDetailResponse, error) {
	args := m.Called(ctx, caller, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CourseDetailResponse), args.Error(1)
}

func (m *MockCourseService) AdminListCourses(ctx context.Context) ([]response.CourseDetailResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.CourseDetailResponse), args.Error(1)
}

func (m *MockCourseService) AdminCreateCourse(ctx context.Context, req *request.CourseRequest) (*response.CourseDetailResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CourseDetailResponse), args.Error(1)
}

func (m *MockCourseService) AdminUpdateCourse(ctx context.Context, courseID string, req *request.CourseRequest) (*response.CourseDetailResponse, error) {
	args := m.Called(ctx, courseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CourseDetailResponse), args.Error(1)
}

func (m *MockCourseService) AdminDeleteCourse(ctx context.Context, courseID string) error {
	return m.Called(ctx, courseID).Error(0)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Purchase(ctx context.Context, userID uuid.UUID, courseID string) (*response.PurchaseResponse, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PurchaseResponse), args.Error(1)
}

func (m *MockPurchaseService) ListMyCourses(ctx context.Context, userID uuid.UUID) ([]response.CourseDetailResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.CourseDetailResponse), args.Error(1)
}

func (m *MockPurchaseService) ListMyPurchases(ctx context.Context, userID uuid.UUID) ([]response.PurchaseResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.PurchaseResponse), args.Error(1)
}

func (m *MockPurchaseService) GetPurchasedCourseDetail(ctx context.Context, caller usecase.Caller, courseID string) (*response.CourseDetailResponse, error) {
	args := m.Called(ctx, caller, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CourseDetailResponse), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.UserResponse), args.Error(1)
}

func (m *MockUserService) DeactivateUser(ctx context.Context, caller usecase.Caller, userID string) error {
	return m.Called(ctx, caller, userID).Error(0)
}

var (
	_ usecase.AuthService     = (*MockAuthService)(nil)
	_ usecase.CourseService   = (*MockCourseService)(nil)
	_ usecase.PurchaseService = (*MockPurchaseService)(nil)
	_ usecase.UserService     = (*MockUserService)(nil)
)
