package response

import "room-booking/internal/schedule"

type IntervalResponse struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
}

func IntervalToResponse(iv schedule.Interval) IntervalResponse {
	return IntervalResponse{
		Start:        schedule.FormatClock(iv.Start),
		End:          schedule.FormatClock(iv.End),
		StartMinutes: iv.Start,
		EndMinutes:   iv.End,
	}
}

type FreeSlotsResponse struct {
	RoomID        string             `json:"room_id"`
	Date          string             `json:"date"`
	BusinessHours IntervalResponse   `json:"business_hours"`
	BufferMinutes int                `json:"buffer_minutes"`
	FreeIntervals []IntervalResponse `json:"free_intervals"`
}

type AvailabilityCheckResponse struct {
	RoomID    string `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}
