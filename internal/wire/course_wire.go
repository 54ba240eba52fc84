package wire

import (
	"course-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCourse(r chi.Router, courseHandler *adaptor.CourseHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/courses", courseHandler.ListCourses)
	r.Get("/api/courses/{id}", courseHandler.GetCourseSummary)

	// Full content, for buyers and admins
	r.With(g.auth).Get("/api/course/{id}", courseHandler.GetCourseDetail)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/courses", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.admin)

		r.Get("/", courseHandler.AdminListCourses)
		r.Post("/", courseHandler.CreateCourse)
		r.Put("/{id}", courseHandler.UpdateCourse)
		r.Delete("/{id}", courseHandler.DeleteCourse)
	})
}
