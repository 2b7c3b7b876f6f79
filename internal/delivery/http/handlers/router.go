package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	orderHandler *OrderHandler,
	boosterHandler *BoosterHandler,
	progressHandler *ProgressHandler,
	checkoutHandler *CheckoutHandler) *chi.Mux {

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/", orderHandler.GetOrders)
			r.Get("/statistics", orderHandler.GetStatistics)
			r.Get("/{id}", orderHandler.GetOrder)
			r.Post("/{id}/claim", orderHandler.ClaimOrder)
			r.Post("/{id}/account-details", orderHandler.SubmitAccountDetails)
			r.Post("/{id}/complete", orderHandler.CompleteOrder)
			r.Post("/{id}/cancel", orderHandler.CancelOrder)
			r.Post("/{id}/reports", progressHandler.SubmitReport)
			r.Get("/{id}/reports", progressHandler.GetReports)
		})

		r.Post("/reports/{id}/review", progressHandler.ReviewReport)

		r.Route("/boosters", func(r chi.Router) {
			r.Post("/", boosterHandler.CreateBooster)
			r.Get("/", boosterHandler.GetBoosters)
			r.Get("/{id}", boosterHandler.GetBooster)
			r.Put("/{id}", boosterHandler.UpdateBooster)
			r.Patch("/{id}/permissions", boosterHandler.SetPermissions)
			r.Patch("/{id}/status", boosterHandler.SetStatus)
			r.Delete("/{id}", boosterHandler.DeleteBooster)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.StartCheckout)
			r.Post("/{id}/account-details", checkoutHandler.SubmitAccountDetails)
			r.Post("/{id}/back", checkoutHandler.Back)
			r.Post("/{id}/payment", checkoutHandler.SubmitPayment)
			r.Delete("/{id}", checkoutHandler.CancelCheckout)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
