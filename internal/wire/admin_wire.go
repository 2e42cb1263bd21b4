package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin registers the management console backend. Every route requires
// a valid session belonging to an admin.
func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/buildings", handler.Building.CreateBuilding)
		r.Put("/api/admin/buildings/{id}", handler.Building.UpdateBuilding)
		r.Delete("/api/admin/buildings/{id}", handler.Building.DeleteBuilding)

		r.Post("/api/admin/categories", handler.Category.CreateCategory)
		r.Put("/api/admin/categories/{id}", handler.Category.UpdateCategory)
		r.Delete("/api/admin/categories/{id}", handler.Category.DeleteCategory)

		r.Get("/api/admin/rooms", handler.Room.GetAllRooms)
		r.Post("/api/admin/rooms", handler.Room.CreateRoom)
		r.Put("/api/admin/rooms/{id}", handler.Room.UpdateRoom)
		r.Delete("/api/admin/rooms/{id}", handler.Room.DeleteRoom)

		r.Get("/api/admin/bookings", handler.Booking.ListBookings)
		r.Post("/api/admin/bookings/{id}/confirm", handler.Booking.ConfirmBooking)
		r.Post("/api/admin/bookings/{id}/decline", handler.Booking.DeclineBooking)
		r.Delete("/api/admin/bookings/{id}", handler.Booking.DeleteBooking)

		r.Get("/api/admin/users", handler.User.GetUsers)
		r.Get("/api/admin/users/{id}", handler.User.GetUserByID)
		r.Put("/api/admin/users/{id}", handler.User.UpdateUser)

		r.Get("/api/admin/audit-logs", handler.Audit.GetAuditLogs)
	})
}
