package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type BuildingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

func BuildingToResponse(building *entity.Building) BuildingResponse {
	return BuildingResponse{
		ID:        building.ID.String(),
		Name:      building.Name,
		Address:   building.Address,
		City:      building.City,
		CreatedAt: building.CreatedAt,
	}
}
