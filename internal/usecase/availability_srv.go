package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/schedule"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	GetFreeSlots(ctx context.Context, roomID, date string) (*response.FreeSlotsResponse, error)
	CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityCheckResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAvailabilityService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "availability")),
		now:    time.Now,
	}
}

// GetFreeSlots lists the bookable gaps of a room on a date. Confirmed
// bookings are padded with the configured buffer, and for today the past
// part of the day is clipped away.
func (s *availabilityService) GetFreeSlots(ctx context.Context, roomID, date string) (*response.FreeSlotsResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", date, err)
	}

	window, err := schedule.NewWindow(s.config.Booking.BusinessHoursStart, s.config.Booking.BusinessHoursEnd)
	if err != nil {
		return nil, fmt.Errorf("business hours misconfigured: %w", err)
	}

	bookings, err := s.repo.Booking.FindConfirmedByRoomAndDate(ctx, id, day)
	if err != nil {
		s.log.Error("Failed to load confirmed bookings", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	busy := make([]schedule.Interval, len(bookings))
	for i, booking := range bookings {
		busy[i] = schedule.Interval{Start: booking.StartMinutes, End: booking.EndMinutes}
	}

	free, err := schedule.FreeIntervals(window, busy, s.config.Booking.BufferMinutes)
	if err != nil {
		s.log.Error("Failed to compute free intervals", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("compute free intervals: %w", err)
	}

	now := s.now()
	if sameDay(day, now) {
		free = schedule.ClipBefore(free, now.Hour()*60+now.Minute())
	}

	intervals := make([]response.IntervalResponse, len(free))
	for i, iv := range free {
		intervals[i] = response.IntervalToResponse(iv)
	}

	return &response.FreeSlotsResponse{
		RoomID:        roomID,
		Date:          date,
		BusinessHours: response.IntervalToResponse(schedule.Interval{Start: window.Start, End: window.End}),
		BufferMinutes: s.config.Booking.BufferMinutes,
		FreeIntervals: intervals,
	}, nil
}

// CheckAvailability answers whether one exact slot is bookable. Unlike the
// free slot listing, this is the authoritative gate and ignores the buffer.
func (s *availabilityService) CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityCheckResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	startMinutes, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: start time %s: %w", req.StartTime, err)
	}
	endMinutes, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: end time %s: %w", req.EndTime, err)
	}
	if startMinutes >= endMinutes {
		return nil, fmt.Errorf("validation failed: start time %s must be before end time %s", req.StartTime, req.EndTime)
	}

	bookings, err := s.repo.Booking.FindConfirmedByRoomAndDate(ctx, id, day)
	if err != nil {
		s.log.Error("Failed to load confirmed bookings", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	busy := make([]schedule.Interval, len(bookings))
	for i, booking := range bookings {
		busy[i] = schedule.Interval{Start: booking.StartMinutes, End: booking.EndMinutes}
	}

	available := !schedule.HasConflict(schedule.Interval{Start: startMinutes, End: endMinutes}, busy)

	return &response.AvailabilityCheckResponse{
		RoomID:    req.RoomID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: available,
	}, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
