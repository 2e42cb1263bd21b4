package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog registers the public browsing surface: buildings, categories,
// rooms and their availability. None of it requires a session.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/api/buildings", handler.Building.GetBuildings)
	r.Get("/api/buildings/{id}", handler.Building.GetBuildingByID)

	r.Get("/api/categories", handler.Category.GetCategories)
	r.Get("/api/categories/{id}", handler.Category.GetCategoryByID)

	r.Get("/api/rooms", handler.Room.GetRooms)
	r.Get("/api/rooms/{id}", handler.Room.GetRoomByID)
	r.Get("/api/rooms/{id}/free-slots", handler.Availability.GetFreeSlots)
	r.Get("/api/rooms/{id}/calendar", handler.Calendar.GetRoomMonth)

	r.Post("/api/bookings/check-availability", handler.Availability.CheckAvailability)
}
