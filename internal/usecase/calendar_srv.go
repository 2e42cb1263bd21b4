package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/response"
	"room-booking/internal/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CalendarService interface {
	GetRoomMonth(ctx context.Context, roomID, month string) (*response.CalendarMonthResponse, error)
}

type calendarService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCalendarService(repo *repository.Repository, log *zap.Logger) CalendarService {
	return &calendarService{
		repo: repo,
		log:  log.With(zap.String("service", "calendar")),
	}
}

// GetRoomMonth renders one month of a room's bookings grouped by day.
// Declined and cancelled bookings never occupy the calendar.
func (s *calendarService) GetRoomMonth(ctx context.Context, roomID, month string) (*response.CalendarMonthResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	firstDay, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %s, expected YYYY-MM: %w", month, err)
	}
	nextMonth := firstDay.AddDate(0, 1, 0)

	bookings, err := s.repo.Booking.FindByRoomBetween(ctx, id, firstDay, nextMonth)
	if err != nil {
		s.log.Error("Failed to load bookings for month", zap.Error(err),
			zap.String("room_id", roomID), zap.String("month", month))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	entriesByDay := make(map[string][]response.CalendarEntry)
	for _, booking := range bookings {
		if booking.Status == entity.BookingStatusDeclined || booking.Status == entity.BookingStatusCancelled {
			continue
		}

		entry := response.CalendarEntry{
			BookingID:   booking.ID.String(),
			Reference:   booking.Reference,
			Purpose:     booking.Purpose,
			StartTime:   schedule.FormatClock(booking.StartMinutes),
			EndTime:     schedule.FormatClock(booking.EndMinutes),
			Status:      string(booking.Status),
			IsRecurring: booking.IsRecurring,
		}
		if booking.RecurringGroupID != nil {
			groupID := booking.RecurringGroupID.String()
			entry.RecurringGroupID = &groupID
		}

		day := booking.Date.Format("2006-01-02")
		entriesByDay[day] = append(entriesByDay[day], entry)
	}

	// Emit every day of the month so the client renders empty cells too.
	var days []response.CalendarDay
	for cursor := firstDay; cursor.Before(nextMonth); cursor = cursor.AddDate(0, 0, 1) {
		day := cursor.Format("2006-01-02")
		days = append(days, response.CalendarDay{
			Date:    day,
			Entries: entriesByDay[day],
		})
	}

	return &response.CalendarMonthResponse{
		RoomID: roomID,
		Month:  month,
		Days:   days,
	}, nil
}
