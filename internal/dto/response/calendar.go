package response

// CalendarEntry is one booking occurrence rendered into a day cell.
type CalendarEntry struct {
	BookingID        string  `json:"booking_id"`
	Reference        string  `json:"reference"`
	Purpose          string  `json:"purpose"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	Status           string  `json:"status"`
	IsRecurring      bool    `json:"is_recurring"`
	RecurringGroupID *string `json:"recurring_group_id,omitempty"`
}

type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

type CalendarMonthResponse struct {
	RoomID string        `json:"room_id"`
	Month  string        `json:"month"`
	Days   []CalendarDay `json:"days"`
}
