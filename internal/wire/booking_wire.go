package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking registers the member booking surface. Every route requires a
// valid session.
func wireBooking(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/profile", handler.User.GetProfile)

		r.Post("/api/bookings", handler.Booking.CreateBooking)
		r.Get("/api/bookings", handler.Booking.GetMyBookings)
		r.Get("/api/bookings/{id}", handler.Booking.GetBookingByID)
		r.Put("/api/bookings/{id}", handler.Booking.UpdateBooking)
		r.Post("/api/bookings/{id}/cancel", handler.Booking.CancelBooking)
	})
}
