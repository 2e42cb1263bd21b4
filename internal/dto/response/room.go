package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type RoomResponse struct {
	ID           string    `json:"id"`
	BuildingID   string    `json:"building_id"`
	BuildingName string    `json:"building_name,omitempty"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	Floor        int       `json:"floor"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		BuildingID: room.BuildingID.String(),
		CategoryID: room.CategoryID.String(),
		Name:       room.Name,
		Capacity:   room.Capacity,
		Floor:      room.Floor,
		IsActive:   room.IsActive,
		CreatedAt:  room.CreatedAt,
	}
}
