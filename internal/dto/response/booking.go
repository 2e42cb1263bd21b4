package response

import (
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/schedule"
)

type BookingResponse struct {
	ID                string               `json:"id"`
	Reference         string               `json:"reference"`
	RoomID            string               `json:"room_id"`
	RoomName          string               `json:"room_name,omitempty"`
	BuildingName      string               `json:"building_name,omitempty"`
	UserID            string               `json:"user_id"`
	Purpose           string               `json:"purpose"`
	Date              string               `json:"date"`
	StartTime         string               `json:"start_time"`
	EndTime           string               `json:"end_time"`
	Status            entity.BookingStatus `json:"status"`
	IsRecurring       bool                 `json:"is_recurring"`
	RecurrencePattern *string              `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string              `json:"recurrence_end_date,omitempty"`
	RecurringGroupID  *string              `json:"recurring_group_id,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                booking.ID.String(),
		Reference:         booking.Reference,
		RoomID:            booking.RoomID.String(),
		UserID:            booking.UserID.String(),
		Purpose:           booking.Purpose,
		Date:              booking.Date.Format("2006-01-02"),
		StartTime:         schedule.FormatClock(booking.StartMinutes),
		EndTime:           schedule.FormatClock(booking.EndMinutes),
		Status:            booking.Status,
		IsRecurring:       booking.IsRecurring,
		RecurrencePattern: booking.RecurrencePattern,
		CreatedAt:         booking.CreatedAt,
	}

	if booking.RecurrenceEndDate != nil {
		endDate := booking.RecurrenceEndDate.Format("2006-01-02")
		resp.RecurrenceEndDate = &endDate
	}
	if booking.RecurringGroupID != nil {
		groupID := booking.RecurringGroupID.String()
		resp.RecurringGroupID = &groupID
	}

	return resp
}

type CreateBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	// Number of occurrences created; greater than one for recurring series.
	Occurrences int `json:"occurrences"`
}
