package entity

import "github.com/google/uuid"

type Room struct {
	Base
	BuildingID uuid.UUID `db:"building_id"`
	CategoryID uuid.UUID `db:"category_id"`
	Name       string    `db:"name"`
	Capacity   int       `db:"capacity"`
	Floor      int       `db:"floor"`
	IsActive   bool      `db:"is_active"`
}
