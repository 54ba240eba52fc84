package adaptor

import (
	"net/http"

	"course-portal/internal/usecase"
	"course-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	service usecase.PurchaseService
	log     *zap.Logger
}

func NewPurchaseHandler(service usecase.PurchaseService, log *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		log:     log.With(zap.String("handler", "purchase")),
	}
}

// Purchase handles POST /api/purchase/{id}
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	purchase, err := h.service.Purchase(r.Context(), caller.UserID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "purchase course")
		return
	}

	utils.ResponseSuccess(w, "Course purchased successfully", purchase)
}

// MyCourses handles GET /api/my-courses
func (h *PurchaseHandler) MyCourses(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	courses, err := h.service.ListMyCourses(r.Context(), caller.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "list my courses")
		return
	}

	utils.ResponseSuccess(w, "Courses retrieved", courses)
}

// MyPurchases handles GET /api/my-purchases
func (h *PurchaseHandler) MyPurchases(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	purchases, err := h.service.ListMyPurchases(r.Context(), caller.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "list my purchases")
		return
	}

	utils.ResponseSuccess(w, "Purchases retrieved", purchases)
}
