package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CanTransitionTo enforces the booking lifecycle: pending can move to any
// decided state, confirmed can still be cancelled, declined and cancelled
// are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusDeclined || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	}
	return false
}

// Booking is one occurrence of a room reservation. A recurring series is
// stored as one row per occurrence, all sharing a RecurringGroupID. Times
// are minutes since midnight on Date; Date itself is UTC midnight.
type Booking struct {
	Base
	Reference         string        `db:"reference"`
	RoomID            uuid.UUID     `db:"room_id"`
	UserID            uuid.UUID     `db:"user_id"`
	Purpose           string        `db:"purpose"`
	Date              time.Time     `db:"date"`
	StartMinutes      int           `db:"start_minutes"`
	EndMinutes        int           `db:"end_minutes"`
	Status            BookingStatus `db:"status"`
	IsRecurring       bool          `db:"is_recurring"`
	RecurrencePattern *string       `db:"recurrence_pattern"`
	RecurrenceEndDate *time.Time    `db:"recurrence_end_date"`
	RecurringGroupID  *uuid.UUID    `db:"recurring_group_id"`
}
