package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/schedule"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxOccurrences bounds recurring series fan-out so a distant end date
// cannot materialize thousands of rows in one request.
const maxOccurrences = 100

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetMyBookings(ctx context.Context, userID string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string, wholeSeries bool) error

	// Admin operations
	ListBookings(ctx context.Context, filter BookingListFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ConfirmBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	DeclineBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, actorID, bookingID string) error
}

// BookingListFilter is the query-string filter for the admin booking list.
type BookingListFilter struct {
	RoomID string
	Status string
	Date   string
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
		now:    time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}
	if !room.IsActive {
		return nil, fmt.Errorf("room %s is not available for booking", req.RoomID)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	startMinutes, endMinutes, err := s.parseSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	today := s.today()
	if date.Before(today) {
		return nil, fmt.Errorf("validation failed: date %s is in the past", req.Date)
	}

	dates, pattern, recurrenceEnd, err := s.expandDates(date, req.RecurrencePattern, req.RecurrenceEndDate)
	if err != nil {
		return nil, err
	}

	// Every occurrence must be free before any row is written. The series
	// is all-or-nothing.
	for _, occurrence := range dates {
		if err := s.checkConflict(ctx, roomID, occurrence, startMinutes, endMinutes, uuid.Nil); err != nil {
			return nil, err
		}
	}

	bookings := s.buildSeries(userUUID, roomID, req.Purpose, dates, startMinutes, endMinutes, pattern, recurrenceEnd)

	if len(bookings) == 1 {
		err = s.repo.Booking.Create(ctx, bookings[0])
	} else {
		err = s.repo.Booking.CreateBatch(ctx, bookings)
	}
	if err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, userUUID,
		"booking.create", "booking", bookings[0].ID.String(),
		fmt.Sprintf("%d occurrence(s) in room %s", len(bookings), room.Name))

	s.log.Info("Booking created",
		zap.String("booking_id", bookings[0].ID.String()),
		zap.String("room_id", req.RoomID),
		zap.Int("occurrences", len(bookings)))

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
		responses[i].RoomName = room.Name
	}

	return &response.CreateBookingResponse{
		Bookings:    responses,
		Occurrences: len(bookings),
	}, nil
}

// parseSlot converts the wire clock strings and enforces ordering and the
// configured business hours.
func (s *bookingService) parseSlot(startTime, endTime string) (int, int, error) {
	startMinutes, err := schedule.ParseClock(startTime)
	if err != nil {
		return 0, 0, fmt.Errorf("validation failed: start time %s: %w", startTime, err)
	}
	endMinutes, err := schedule.ParseClock(endTime)
	if err != nil {
		return 0, 0, fmt.Errorf("validation failed: end time %s: %w", endTime, err)
	}
	if startMinutes >= endMinutes {
		return 0, 0, fmt.Errorf("validation failed: start time %s must be before end time %s", startTime, endTime)
	}

	window, err := s.businessWindow()
	if err != nil {
		return 0, 0, err
	}
	if startMinutes < window.Start || endMinutes > window.End {
		return 0, 0, fmt.Errorf("validation failed: booking must fall within business hours %s to %s",
			s.config.Booking.BusinessHoursStart, s.config.Booking.BusinessHoursEnd)
	}

	return startMinutes, endMinutes, nil
}

func (s *bookingService) businessWindow() (schedule.Window, error) {
	window, err := schedule.NewWindow(s.config.Booking.BusinessHoursStart, s.config.Booking.BusinessHoursEnd)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("business hours misconfigured: %w", err)
	}
	return window, nil
}

func (s *bookingService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// expandDates turns the optional recurrence fields into the concrete list of
// occurrence dates. Pattern and end date must be given together.
func (s *bookingService) expandDates(date time.Time, patternField, endField *string) ([]time.Time, *string, *time.Time, error) {
	if patternField == nil {
		if endField != nil {
			return nil, nil, nil, fmt.Errorf("validation failed: recurrence_end_date requires recurrence_pattern")
		}
		return []time.Time{date}, nil, nil, nil
	}
	if endField == nil {
		return nil, nil, nil, fmt.Errorf("validation failed: recurrence_pattern requires recurrence_end_date")
	}

	recurrenceEnd, err := time.Parse("2006-01-02", *endField)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid recurrence end date %s: %w", *endField, err)
	}

	dates, err := schedule.Expand(date, schedule.Pattern(*patternField), recurrenceEnd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(dates) > maxOccurrences {
		return nil, nil, nil, fmt.Errorf("validation failed: recurrence expands to %d occurrences, limit is %d",
			len(dates), maxOccurrences)
	}

	return dates, patternField, &recurrenceEnd, nil
}

// checkConflict rejects a slot that overlaps a confirmed booking for the
// room on the given date. The buffer is a display concern for free slot
// listings and is deliberately absent here. excludeID skips the booking
// being rescheduled so it cannot conflict with itself.
func (s *bookingService) checkConflict(ctx context.Context, roomID uuid.UUID, date time.Time, startMinutes, endMinutes int, excludeID uuid.UUID) error {
	existing, err := s.repo.Booking.FindConfirmedByRoomAndDate(ctx, roomID, date)
	if err != nil {
		s.log.Error("Failed to load confirmed bookings", zap.Error(err), zap.String("room_id", roomID.String()))
		return fmt.Errorf("check availability: %w", err)
	}

	busy := make([]schedule.Interval, 0, len(existing))
	for _, booking := range existing {
		if booking.ID == excludeID {
			continue
		}
		busy = append(busy, schedule.Interval{Start: booking.StartMinutes, End: booking.EndMinutes})
	}

	candidate := schedule.Interval{Start: startMinutes, End: endMinutes}
	if schedule.HasConflict(candidate, busy) {
		return fmt.Errorf("booking conflict: room is already booked on %s between %s and %s",
			date.Format("2006-01-02"), schedule.FormatClock(startMinutes), schedule.FormatClock(endMinutes))
	}
	return nil
}

func (s *bookingService) buildSeries(userID, roomID uuid.UUID, purpose string, dates []time.Time, startMinutes, endMinutes int, pattern *string, recurrenceEnd *time.Time) []*entity.Booking {
	now := s.now()
	isRecurring := len(dates) > 1 || pattern != nil

	var groupID *uuid.UUID
	if isRecurring {
		id := uuid.New()
		groupID = &id
	}

	bookings := make([]*entity.Booking, len(dates))
	for i, date := range dates {
		bookings[i] = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Reference:         utils.GenerateBookingReference(),
			RoomID:            roomID,
			UserID:            userID,
			Purpose:           purpose,
			Date:              date,
			StartMinutes:      startMinutes,
			EndMinutes:        endMinutes,
			Status:            entity.BookingStatusPending,
			IsRecurring:       isRecurring,
			RecurrencePattern: pattern,
			RecurrenceEndDate: recurrenceEnd,
			RecurringGroupID:  groupID,
		}
	}
	return bookings
}

func (s *bookingService) GetMyBookings(ctx context.Context, userID string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if requesterRole != entity.RoleAdmin && booking.UserID.String() != requesterID {
		return nil, fmt.Errorf("not allowed to view booking %s", bookingID)
	}

	resp := response.BookingToResponse(booking)
	if room, err := s.repo.Room.FindByID(ctx, booking.RoomID); err == nil && room != nil {
		resp.RoomName = room.Name
		if building, err := s.repo.Building.FindByID(ctx, room.BuildingID); err == nil && building != nil {
			resp.BuildingName = building.Name
		}
	}
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userUUID {
		return nil, fmt.Errorf("not allowed to update booking %s", bookingID)
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("validation failed: only pending bookings can be updated, booking is %s", booking.Status)
	}

	if req.Purpose != nil {
		booking.Purpose = *req.Purpose
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", *req.Date, err)
		}
		if date.Before(s.today()) {
			return nil, fmt.Errorf("validation failed: date %s is in the past", *req.Date)
		}
		booking.Date = date
	}
	if req.StartTime != nil || req.EndTime != nil {
		startTime := schedule.FormatClock(booking.StartMinutes)
		endTime := schedule.FormatClock(booking.EndMinutes)
		if req.StartTime != nil {
			startTime = *req.StartTime
		}
		if req.EndTime != nil {
			endTime = *req.EndTime
		}
		booking.StartMinutes, booking.EndMinutes, err = s.parseSlot(startTime, endTime)
		if err != nil {
			return nil, err
		}
	}

	if err := s.checkConflict(ctx, booking.RoomID, booking.Date, booking.StartMinutes, booking.EndMinutes, booking.ID); err != nil {
		return nil, err
	}

	booking.UpdatedAt = s.now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, userUUID,
		"booking.update", "booking", bookingID, booking.Reference)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string, wholeSeries bool) error {
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", requesterID, err)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if requesterRole != entity.RoleAdmin && booking.UserID != requesterUUID {
		return fmt.Errorf("not allowed to cancel booking %s", bookingID)
	}
	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return fmt.Errorf("validation failed: booking in status %s cannot be cancelled", booking.Status)
	}

	if wholeSeries && booking.RecurringGroupID != nil {
		if err := s.repo.Booking.UpdateStatusByGroup(ctx, *booking.RecurringGroupID, entity.BookingStatusCancelled); err != nil {
			s.log.Error("Failed to cancel booking series", zap.Error(err),
				zap.String("group_id", booking.RecurringGroupID.String()))
			return fmt.Errorf("cancel booking series: %w", err)
		}
		recordAudit(ctx, s.repo.Audit, s.log, requesterUUID,
			"booking.cancel_series", "booking", bookingID, booking.RecurringGroupID.String())
		s.log.Info("Booking series cancelled",
			zap.String("booking_id", bookingID),
			zap.String("group_id", booking.RecurringGroupID.String()))
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, requesterUUID,
		"booking.cancel", "booking", bookingID, booking.Reference)
	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter BookingListFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	repoFilter := repository.BookingFilter{}

	if filter.RoomID != "" {
		id, err := uuid.Parse(filter.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID format %s: %w", filter.RoomID, err)
		}
		repoFilter.RoomID = &id
	}
	if filter.Status != "" {
		status := entity.BookingStatus(filter.Status)
		switch status {
		case entity.BookingStatusPending, entity.BookingStatusConfirmed,
			entity.BookingStatusDeclined, entity.BookingStatusCancelled:
			repoFilter.Status = &status
		default:
			return nil, fmt.Errorf("validation failed: unknown booking status %s", filter.Status)
		}
	}
	if filter.Date != "" {
		date, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %s: %w", filter.Date, err)
		}
		repoFilter.Date = &date
	}

	bookings, err := s.repo.Booking.FindAll(ctx, repoFilter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	return s.decide(ctx, actorID, bookingID, entity.BookingStatusConfirmed)
}

func (s *bookingService) DeclineBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	return s.decide(ctx, actorID, bookingID, entity.BookingStatusDeclined)
}

// decide moves a pending booking to confirmed or declined. Confirming
// re-checks the slot because another booking may have been confirmed for the
// same room since this one was requested.
func (s *bookingService) decide(ctx context.Context, actorID, bookingID string, next entity.BookingStatus) (*response.BookingResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("validation failed: booking in status %s cannot become %s", booking.Status, next)
	}

	if next == entity.BookingStatusConfirmed {
		if err := s.checkConflict(ctx, booking.RoomID, booking.Date, booking.StartMinutes, booking.EndMinutes, booking.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, next); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err),
			zap.String("booking_id", bookingID), zap.String("status", string(next)))
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}
	booking.Status = next
	booking.UpdatedAt = s.now()

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"booking."+string(next), "booking", bookingID, booking.Reference)

	s.log.Info("Booking status changed",
		zap.String("booking_id", bookingID),
		zap.String("status", string(next)))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, actorID, bookingID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"booking.delete", "booking", bookingID, booking.Reference)
	return nil
}

func (s *bookingService) loadBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return booking, nil
}
