package wire

import (
	"course-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePurchase(r chi.Router, purchaseHandler *adaptor.PurchaseHandler, g guards) {
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Post("/api/purchase/{id}", purchaseHandler.Purchase)
		r.Get("/api/my-courses", purchaseHandler.MyCourses)
		r.Get("/api/my-purchases", purchaseHandler.MyPurchases)
	})
}
