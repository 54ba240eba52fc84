package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"
	"course-portal/internal/data/repository/repotest"
	"course-portal/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCourseServiceWithMocks() (*courseService, *MockCourseRepository, *MockPurchaseRepository) {
	courses := new(MockCourseRepository)
	purchases := new(MockPurchaseRepository)
	purchase := NewPurchaseService(purchases, courses, zap.NewNop())
	svc := NewCourseService(courses, purchase, zap.NewNop()).(*courseService)
	return svc, courses, purchases
}

func validCourseRequest() *request.CourseRequest {
	return &request.CourseRequest{
		Title:       "AutoCAD for Architects",
		Description: "Drafting fundamentals",
		Instructor:  "Mehmet Demir",
		Category:    "CAD",
		Difficulty:  "beginner",
		Duration:    "6 hours",
		Price:       149.90,
		Videos: []request.CourseVideoRequest{
			{Title: "Setup", VideoURL: "https://vimeo.com/100"},
			{Title: "Layers", VideoURL: "https://vimeo.com/101", Description: "Organising drawings"},
		},
	}
}

func TestCourseService_ListPublicCourses(t *testing.T) {
	svc, courses, _ := newCourseServiceWithMocks()
	c := activeCourse(0)
	courses.On("FindAllActive", mock.Anything).Return([]*entity.Course{c}, nil).Once()

	list, err := svc.ListPublicCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID.String(), list[0].ID)
	assert.Equal(t, 1, list[0].VideoCount)
}

func TestCourseService_ListPublicCourses_EmptyIsNotNil(t *testing.T) {
	svc, courses, _ := newCourseServiceWithMocks()
	courses.On("FindAllActive", mock.Anything).Return([]*entity.Course{}, nil).Once()

	list, err := svc.ListPublicCourses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCourseService_GetCourseSummary(t *testing.T) {
	active := activeCourse(10)
	inactive := activeCourse(10)
	inactive.IsActive = false

	tests := []struct {
		name      string
		id        string
		mockSetup func(*MockCourseRepository)
		wantErr   error
	}{
		{
			name: "active course",
			id:   active.ID.String(),
			mockSetup: func(m *MockCourseRepository) {
				m.On("FindByID", mock.Anything, active.ID).Return(active, nil).Once()
			},
		},
		{
			name: "inactive course is hidden",
			id:   inactive.ID.String(),
			mockSetup: func(m *MockCourseRepository) {
				m.On("FindByID", mock.Anything, inactive.ID).Return(inactive, nil).Once()
			},
			wantErr: ErrNotFound,
		},
		{
			name:      "malformed id",
			id:        "42",
			mockSetup: func(m *MockCourseRepository) {},
			wantErr:   ErrNotFound,
		},
		{
			name: "storage error",
			id:   active.ID.String(),
			mockSetup: func(m *MockCourseRepository) {
				m.On("FindByID", mock.Anything, active.ID).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, courses, _ := newCourseServiceWithMocks()
			tt.mockSetup(courses)

			resp, err := svc.GetCourseSummary(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, resp.ID)
			}
			courses.AssertExpectations(t)
		})
	}
}

func TestCourseService_AdminCreateCourse(t *testing.T) {
	svc, courses, _ := newCourseServiceWithMocks()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	courses.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Course) bool {
		return c.ID != uuid.Nil &&
			c.IsActive &&
			c.Currency == "TRY" &&
			c.Price == 149.90 &&
			len(c.Videos) == 2 &&
			c.Videos[1].Description == "Organising drawings" &&
			c.CreatedAt.Equal(now)
	})).Return(nil).Once()

	resp, err := svc.AdminCreateCourse(context.Background(), validCourseRequest())
	require.NoError(t, err)
	assert.Equal(t, "AutoCAD for Architects", resp.Title)
	assert.Len(t, resp.Videos, 2)
	assert.True(t, resp.IsActive)
	courses.AssertExpectations(t)
}

func TestCourseService_AdminCreateCourse_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.CourseRequest)
		field  string
	}{
		{name: "empty title", mutate: func(r *request.CourseRequest) { r.Title = "" }, field: "title"},
		{name: "empty description", mutate: func(r *request.CourseRequest) { r.Description = "" }, field: "description"},
		{name: "blank title", mutate: func(r *request.CourseRequest) { r.Title = "   " }, field: "title"},
		{name: "blank description", mutate: func(r *request.CourseRequest) { r.Description = "  \t " }, field: "description"},
		{name: "blank video title", mutate: func(r *request.CourseRequest) { r.Videos[1].Title = " " }, field: "videos[1].title"},
		{name: "fractional cents", mutate: func(r *request.CourseRequest) { r.Price = 19.999 }, field: "price"},
		{name: "price beyond storage", mutate: func(r *request.CourseRequest) { r.Price = 1e10 }, field: "price"},
		{name: "negative price", mutate: func(r *request.CourseRequest) { r.Price = -1 }, field: "price"},
		{name: "bad currency", mutate: func(r *request.CourseRequest) { r.Currency = "EURO" }, field: "currency"},
		{name: "bad video url", mutate: func(r *request.CourseRequest) { r.Videos[0].VideoURL = "vimeo" }, field: "videos[0].video_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, courses, _ := newCourseServiceWithMocks()
			req := validCourseRequest()
			tt.mutate(req)

			resp, err := svc.AdminCreateCourse(context.Background(), req)
			assert.Nil(t, resp)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			courses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCourseService_AdminCreateCourse_TrimsText(t *testing.T) {
	repo, _ := repotest.NewRepository()
	svc := NewCourseService(repo.Course, NewPurchaseService(repo.Purchase, repo.Course, zap.NewNop()), zap.NewNop())

	req := validCourseRequest()
	req.Title = "  AutoCAD for Architects \n"
	req.Description = "\tDrafting fundamentals "
	req.Price = 19.99

	resp, err := svc.AdminCreateCourse(context.Background(), req)
	require.NoError(t, err)

	stored, err := repo.Course.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "AutoCAD for Architects", stored.Title)
	assert.Equal(t, "Drafting fundamentals", stored.Description)
	assert.Equal(t, 19.99, stored.Price)
	assert.Equal(t, stored.Price, resp.Price)
}

func TestCourseService_AdminUpdateCourse(t *testing.T) {
	t.Run("full replace keeps id and created_at", func(t *testing.T) {
		svc, courses, _ := newCourseServiceWithMocks()
		existing := activeCourse(50)
		createdAt := existing.CreatedAt
		later := createdAt.Add(time.Hour)
		svc.now = fixedClock(later)

		courses.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		courses.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Course) bool {
			return c.ID == existing.ID &&
				c.CreatedAt.Equal(createdAt) &&
				c.UpdatedAt.Equal(later) &&
				c.Title == "AutoCAD for Architects" &&
				c.Instructor == "Mehmet Demir" &&
				c.IsActive
		})).Return(nil).Once()

		resp, err := svc.AdminUpdateCourse(context.Background(), existing.ID.String(), validCourseRequest())
		require.NoError(t, err)
		assert.Equal(t, existing.ID.String(), resp.ID)
		assert.Equal(t, 149.90, resp.Price)
		courses.AssertExpectations(t)
	})

	t.Run("reactivates a deleted course", func(t *testing.T) {
		svc, courses, _ := newCourseServiceWithMocks()
		existing := activeCourse(50)
		existing.IsActive = false

		req := validCourseRequest()
		yes := true
		req.IsActive = &yes

		courses.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		courses.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Course) bool { return c.IsActive })).Return(nil).Once()

		resp, err := svc.AdminUpdateCourse(context.Background(), existing.ID.String(), req)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})

	t.Run("omitted is_active keeps the current flag", func(t *testing.T) {
		svc, courses, _ := newCourseServiceWithMocks()
		existing := activeCourse(50)
		existing.IsActive = false

		courses.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
		courses.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Course) bool { return !c.IsActive })).Return(nil).Once()

		resp, err := svc.AdminUpdateCourse(context.Background(), existing.ID.String(), validCourseRequest())
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("missing course", func(t *testing.T) {
		svc, courses, _ := newCourseServiceWithMocks()
		id := uuid.New()
		courses.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

		_, err := svc.AdminUpdateCourse(context.Background(), id.String(), validCourseRequest())
		assert.ErrorIs(t, err, ErrNotFound)
		courses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("blank title", func(t *testing.T) {
		svc, courses, _ := newCourseServiceWithMocks()
		req := validCourseRequest()
		req.Title = "\t"

		_, err := svc.AdminUpdateCourse(context.Background(), uuid.NewString(), req)
		assert.ErrorIs(t, err, ErrValidation)
		courses.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCourseService_AdminDeleteCourse(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "soft deletes"},
		{name: "missing course", repoErr: fmt.Errorf("delete: %w", repository.ErrNotFound), wantErr: ErrNotFound},
		{name: "storage error", repoErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, courses, _ := newCourseServiceWithMocks()
			id := uuid.New()
			courses.On("SoftDelete", mock.Anything, id).Return(tt.repoErr).Once()

			err := svc.AdminDeleteCourse(context.Background(), id.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			courses.AssertExpectations(t)
		})
	}
}

func TestCourseService_GetCourseDetail(t *testing.T) {
	user := Caller{UserID: uuid.New(), Role: entity.RoleUser}
	admin := Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	active := activeCourse(99)
	inactive := activeCourse(99)
	inactive.IsActive = false
	missing := uuid.New()

	tests := []struct {
		name      string
		caller    Caller
		courseID  uuid.UUID
		mockSetup func(*MockCourseRepository, *MockPurchaseRepository)
		wantErr   error
	}{
		{
			name:     "buyer sees videos",
			caller:   user,
			courseID: active.ID,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				p.On("Exists", mock.Anything, user.UserID, active.ID).Return(true, nil).Once()
				c.On("FindByID", mock.Anything, active.ID).Return(active, nil).Once()
			},
		},
		{
			name:     "not purchased",
			caller:   user,
			courseID: active.ID,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				p.On("Exists", mock.Anything, user.UserID, active.ID).Return(false, nil).Once()
			},
			wantErr: ErrForbidden,
		},
		{
			name:     "purchase checked before existence",
			caller:   user,
			courseID: missing,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				p.On("Exists", mock.Anything, user.UserID, missing).Return(false, nil).Once()
			},
			wantErr: ErrForbidden,
		},
		{
			name:     "buyer of a deleted course",
			caller:   user,
			courseID: inactive.ID,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				p.On("Exists", mock.Anything, user.UserID, inactive.ID).Return(true, nil).Once()
				c.On("FindByID", mock.Anything, inactive.ID).Return(inactive, nil).Once()
			},
			wantErr: ErrNotFound,
		},
		{
			name:     "admin without purchase",
			caller:   admin,
			courseID: active.ID,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				c.On("FindByID", mock.Anything, active.ID).Return(active, nil).Once()
			},
		},
		{
			name:     "admin sees deleted course",
			caller:   admin,
			courseID: inactive.ID,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				c.On("FindByID", mock.Anything, inactive.ID).Return(inactive, nil).Once()
			},
		},
		{
			name:     "admin and missing course",
			caller:   admin,
			courseID: missing,
			mockSetup: func(c *MockCourseRepository, p *MockPurchaseRepository) {
				c.On("FindByID", mock.Anything, missing).Return(nil, nil).Once()
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, courses, purchases := newCourseServiceWithMocks()
			tt.mockSetup(courses, purchases)

			resp, err := svc.GetCourseDetail(context.Background(), tt.caller, tt.courseID.String())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.courseID.String(), resp.ID)
				assert.Len(t, resp.Videos, 1)
			}
			courses.AssertExpectations(t)
			purchases.AssertExpectations(t)
		})
	}
}
