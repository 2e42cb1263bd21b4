package repository

import (
	"room-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Building BuildingRepository
	Category CategoryRepository
	Room     RoomRepository
	Booking  BookingRepository
	Audit    AuditRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Building: NewBuildingRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Audit:    NewAuditRepository(db, log),
	}
}
