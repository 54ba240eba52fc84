package adaptor

import (
	"net/http"

	"course-portal/internal/dto/request"
	"course-portal/internal/usecase"
	"course-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseHandler struct {
	service usecase.CourseService
	log     *zap.Logger
}

func NewCourseHandler(service usecase.CourseService, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		log:     log.With(zap.String("handler", "course")),
	}
}

// ListCourses handles GET /api/courses
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListPublicCourses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list courses")
		return
	}

	utils.ResponseSuccess(w, "Courses retrieved", courses)
}

// GetCourseSummary handles GET /api/courses/{id}
func (h *CourseHandler) GetCourseSummary(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.GetCourseSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get course")
		return
	}

	utils.ResponseSuccess(w, "Course retrieved", course)
}

// GetCourseDetail handles GET /api/course/{id}
func (h *CourseHandler) GetCourseDetail(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	course, err := h.service.GetCourseDetail(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get course detail")
		return
	}

	utils.ResponseSuccess(w, "Course retrieved", course)
}

// AdminListCourses handles GET /api/admin/courses
func (h *CourseHandler) AdminListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.AdminListCourses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all courses")
		return
	}

	utils.ResponseSuccess(w, "Courses retrieved", courses)
}

// CreateCourse handles POST /api/admin/courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req request.CourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course, err := h.service.AdminCreateCourse(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create course")
		return
	}

	utils.ResponseSuccess(w, "Course created", course)
}

// UpdateCourse handles PUT /api/admin/courses/{id}
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var req request.CourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course, err := h.service.AdminUpdateCourse(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update course")
		return
	}

	utils.ResponseSuccess(w, "Course updated", course)
}

// DeleteCourse handles DELETE /api/admin/courses/{id}
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := h.service.AdminDeleteCourse(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete course")
		return
	}

	utils.ResponseSuccess(w, "Course deleted", nil)
}
