package request

type BuildingRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,min=1,max=200"`
	City    string `json:"city" validate:"required,min=1,max=100"`
}

type BuildingUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
}
