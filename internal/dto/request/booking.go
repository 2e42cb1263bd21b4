package request

type CreateBookingRequest struct {
	RoomID            string  `json:"room_id" validate:"required,uuid4"`
	Purpose           string  `json:"purpose" validate:"required,min=1,max=200"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime           string  `json:"end_time" validate:"required,datetime=15:04"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty" validate:"omitempty,oneof=Daily Weekly Monthly"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBookingRequest struct {
	Purpose   *string `json:"purpose,omitempty" validate:"omitempty,min=1,max=200"`
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
}

type CheckAvailabilityRequest struct {
	RoomID    string `json:"room_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type CancelBookingRequest struct {
	// When true and the booking belongs to a recurring series, every
	// remaining occurrence of that series is cancelled.
	WholeSeries bool `json:"whole_series"`
}
