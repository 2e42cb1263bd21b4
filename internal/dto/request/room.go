package request

type RoomRequest struct {
	BuildingID string `json:"building_id" validate:"required,uuid4"`
	CategoryID string `json:"category_id" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	Floor      int    `json:"floor"`
}

type RoomUpdateRequest struct {
	BuildingID *string `json:"building_id,omitempty" validate:"omitempty,uuid4"`
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity   *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Floor      *int    `json:"floor,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
