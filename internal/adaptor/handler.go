package adaptor

import (
	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Building     *BuildingHandler
	Category     *CategoryHandler
	Room         *RoomHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Calendar     *CalendarHandler
	User         *UserHandler
	Audit        *AuditHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Building:     NewBuildingHandler(service.Building, log),
		Category:     NewCategoryHandler(service.Category, log),
		Room:         NewRoomHandler(service.Room, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Calendar:     NewCalendarHandler(service.Calendar, log),
		User:         NewUserHandler(service.User, log),
		Audit:        NewAuditHandler(service.Audit, log),
	}
}
