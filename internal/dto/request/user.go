package request

type UpdateUserRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=member admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}
