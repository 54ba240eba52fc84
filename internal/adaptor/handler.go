package adaptor

import (
	"encoding/json"
	"net/http"

	"course-portal/internal/usecase"
	"course-portal/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Course   *CourseHandler
	Purchase *PurchaseHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Course:   NewCourseHandler(service.Course, log),
		Purchase: NewPurchaseHandler(service.Purchase, log),
	}
}

// decodeAndValidate reads a JSON body into dst and runs the validator on it.
// It writes the 400 response itself and reports whether the caller may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// callerFromRequest returns the identity Authenticate stored in the context
func callerFromRequest(r *http.Request) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Caller{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Caller{UserID: userID, Role: role}, true
}
