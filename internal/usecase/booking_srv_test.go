package usecase

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			BusinessHoursStart: "08:00",
			BusinessHoursEnd:   "22:00",
			BufferMinutes:      30,
		},
	}
}

func newTestBookingService(rooms *fakeRoomRepo, bookings *fakeBookingRepo) (*bookingService, *fakeAuditRepo) {
	audit := &fakeAuditRepo{}
	repo := &repository.Repository{
		Room:    rooms,
		Booking: bookings,
		Audit:   audit,
	}
	svc := &bookingService{
		repo:   repo,
		config: testConfig(),
		log:    zap.NewNop(),
		now: func() time.Time {
			return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		},
	}
	return svc, audit
}

func activeRoom(id uuid.UUID) *fakeRoomRepo {
	return &fakeRoomRepo{
		findByIDFn: func(_ context.Context, got uuid.UUID) (*entity.Room, error) {
			if got != id {
				return nil, nil
			}
			return &entity.Room{
				Base:     entity.Base{ID: id},
				Name:     "Meeting Room A",
				Capacity: 8,
				IsActive: true,
			}, nil
		},
	}
}

func confirmedBooking(roomID uuid.UUID, start, end int) *entity.Booking {
	return &entity.Booking{
		Base:         entity.Base{ID: uuid.New()},
		RoomID:       roomID,
		StartMinutes: start,
		EndMinutes:   end,
		Status:       entity.BookingStatusConfirmed,
	}
}

func TestCreateBooking_SingleOccurrence(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	var created *entity.Booking
	bookings := &fakeBookingRepo{
		createFn: func(_ context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	svc, audit := newTestBookingService(activeRoom(roomID), bookings)

	resp, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Sprint planning",
		Date:      "2025-06-10",
		StartTime: "10:00",
		EndTime:   "11:30",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 1, resp.Occurrences)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, 600, created.StartMinutes)
	assert.Equal(t, 690, created.EndMinutes)
	assert.False(t, created.IsRecurring)
	assert.Nil(t, created.RecurringGroupID)
	assert.NotEmpty(t, created.Reference)
	assert.Len(t, audit.entries, 1)
}

func TestCreateBooking_WeeklyRecurrenceFanOut(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	var batch []*entity.Booking
	bookings := &fakeBookingRepo{
		createBatchFn: func(_ context.Context, created []*entity.Booking) error {
			batch = created
			return nil
		},
	}
	svc, _ := newTestBookingService(activeRoom(roomID), bookings)

	pattern := "Weekly"
	endDate := "2025-07-01"
	resp, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		RoomID:            roomID.String(),
		Purpose:           "Weekly sync",
		Date:              "2025-06-10",
		StartTime:         "09:00",
		EndTime:           "10:00",
		RecurrencePattern: &pattern,
		RecurrenceEndDate: &endDate,
	})

	require.NoError(t, err)
	// Jun 10, 17, 24 and Jul 1
	require.Len(t, batch, 4)
	assert.Equal(t, 4, resp.Occurrences)

	groupID := batch[0].RecurringGroupID
	require.NotNil(t, groupID)
	for i, booking := range batch {
		assert.True(t, booking.IsRecurring)
		assert.Equal(t, entity.BookingStatusPending, booking.Status)
		require.NotNil(t, booking.RecurringGroupID)
		assert.Equal(t, *groupID, *booking.RecurringGroupID)
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*i), booking.Date)
	}
}

func TestCreateBooking_ConflictRejected(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	bookings := &fakeBookingRepo{
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{confirmedBooking(roomID, 600, 660)}, nil
		},
		createFn: func(_ context.Context, _ *entity.Booking) error {
			t.Fatal("create must not be called on conflict")
			return nil
		},
	}
	svc, _ := newTestBookingService(activeRoom(roomID), bookings)

	_, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Overlap attempt",
		Date:      "2025-06-10",
		StartTime: "10:30",
		EndTime:   "11:30",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}

func TestCreateBooking_AdjacentSlotAllowed(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	bookings := &fakeBookingRepo{
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{confirmedBooking(roomID, 600, 660)}, nil
		},
	}
	svc, _ := newTestBookingService(activeRoom(roomID), bookings)

	// Back to back with the 10:00-11:00 booking. The half-open interval
	// model means 11:00-12:00 does not overlap it.
	_, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Back to back",
		Date:      "2025-06-10",
		StartTime: "11:00",
		EndTime:   "12:00",
	})

	require.NoError(t, err)
}

func TestCreateBooking_RecurringSeriesConflictIsAllOrNothing(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()
	blocked := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, date time.Time) ([]*entity.Booking, error) {
			if date.Equal(blocked) {
				return []*entity.Booking{confirmedBooking(roomID, 540, 600)}, nil
			}
			return nil, nil
		},
		createBatchFn: func(_ context.Context, _ []*entity.Booking) error {
			t.Fatal("no occurrence may be written when one conflicts")
			return nil
		},
	}
	svc, _ := newTestBookingService(activeRoom(roomID), bookings)

	pattern := "Weekly"
	endDate := "2025-06-24"
	_, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		RoomID:            roomID.String(),
		Purpose:           "Weekly sync",
		Date:              "2025-06-10",
		StartTime:         "09:00",
		EndTime:           "10:00",
		RecurrencePattern: &pattern,
		RecurrenceEndDate: &endDate,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}

func TestCreateBooking_OutsideBusinessHours(t *testing.T) {
	roomID := uuid.New()
	svc, _ := newTestBookingService(activeRoom(roomID), &fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Too early",
		Date:      "2025-06-10",
		StartTime: "06:00",
		EndTime:   "09:00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "business hours")
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	roomID := uuid.New()
	svc, _ := newTestBookingService(activeRoom(roomID), &fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Time travel",
		Date:      "2025-05-30",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "past")
}

func TestCreateBooking_PatternWithoutEndDate(t *testing.T) {
	roomID := uuid.New()
	svc, _ := newTestBookingService(activeRoom(roomID), &fakeBookingRepo{})

	pattern := "Daily"
	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID:            roomID.String(),
		Purpose:           "Open ended",
		Date:              "2025-06-10",
		StartTime:         "10:00",
		EndTime:           "11:00",
		RecurrencePattern: &pattern,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recurrence_end_date")
}

func TestCreateBooking_InactiveRoom(t *testing.T) {
	roomID := uuid.New()
	rooms := &fakeRoomRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Room, error) {
			return &entity.Room{Base: entity.Base{ID: roomID}, IsActive: false}, nil
		},
	}
	svc, _ := newTestBookingService(rooms, &fakeBookingRepo{})

	_, err := svc.CreateBooking(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID:    roomID.String(),
		Purpose:   "Closed room",
		Date:      "2025-06-10",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestCancelBooking_Owner(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	var newStatus entity.BookingStatus
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:   entity.Base{ID: bookingID},
				UserID: userID,
				Status: entity.BookingStatusConfirmed,
			}, nil
		},
		updateStatusFn: func(_ context.Context, _ uuid.UUID, status entity.BookingStatus) error {
			newStatus = status
			return nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), userID.String(), entity.RoleMember, bookingID.String(), false)

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, newStatus)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:   entity.Base{ID: uuid.New()},
				UserID: uuid.New(),
				Status: entity.BookingStatusPending,
			}, nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), uuid.New().String(), entity.RoleMember, uuid.New().String(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestCancelBooking_WholeSeries(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()

	var cancelledGroup uuid.UUID
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:             entity.Base{ID: uuid.New()},
				UserID:           userID,
				Status:           entity.BookingStatusPending,
				IsRecurring:      true,
				RecurringGroupID: &groupID,
			}, nil
		},
		updateStatusByGroupFn: func(_ context.Context, got uuid.UUID, status entity.BookingStatus) error {
			cancelledGroup = got
			assert.Equal(t, entity.BookingStatusCancelled, status)
			return nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), userID.String(), entity.RoleMember, uuid.New().String(), true)

	require.NoError(t, err)
	assert.Equal(t, groupID, cancelledGroup)
}

func TestCancelBooking_TerminalStatus(t *testing.T) {
	userID := uuid.New()
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:   entity.Base{ID: uuid.New()},
				UserID: userID,
				Status: entity.BookingStatusDeclined,
			}, nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), userID.String(), entity.RoleMember, uuid.New().String(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be cancelled")
}

func TestConfirmBooking_Pending(t *testing.T) {
	bookingID := uuid.New()

	var newStatus entity.BookingStatus
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:         entity.Base{ID: bookingID},
				UserID:       uuid.New(),
				StartMinutes: 600,
				EndMinutes:   660,
				Status:       entity.BookingStatusPending,
			}, nil
		},
		updateStatusFn: func(_ context.Context, _ uuid.UUID, status entity.BookingStatus) error {
			newStatus = status
			return nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	resp, err := svc.ConfirmBooking(context.Background(), uuid.New().String(), bookingID.String())

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, newStatus)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
}

func TestConfirmBooking_SlotTakenMeanwhile(t *testing.T) {
	roomID := uuid.New()
	bookingID := uuid.New()

	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:         entity.Base{ID: bookingID},
				RoomID:       roomID,
				UserID:       uuid.New(),
				StartMinutes: 600,
				EndMinutes:   660,
				Status:       entity.BookingStatusPending,
			}, nil
		},
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{confirmedBooking(roomID, 630, 690)}, nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	_, err := svc.ConfirmBooking(context.Background(), uuid.New().String(), bookingID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict")
}

func TestDeclineBooking_FromConfirmedRejected(t *testing.T) {
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:   entity.Base{ID: uuid.New()},
				UserID: uuid.New(),
				Status: entity.BookingStatusConfirmed,
			}, nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	_, err := svc.DeclineBooking(context.Background(), uuid.New().String(), uuid.New().String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot become")
}

func TestUpdateBooking_NonPendingRejected(t *testing.T) {
	userID := uuid.New()
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				Base:   entity.Base{ID: uuid.New()},
				UserID: userID,
				Status: entity.BookingStatusConfirmed,
			}, nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	purpose := "New purpose"
	_, err := svc.UpdateBooking(context.Background(), userID.String(), uuid.New().String(), &request.UpdateBookingRequest{
		Purpose: &purpose,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only pending")
}

func TestUpdateBooking_RescheduleSkipsSelfConflict(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	roomID := uuid.New()

	existing := &entity.Booking{
		Base:         entity.Base{ID: bookingID},
		RoomID:       roomID,
		UserID:       userID,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartMinutes: 600,
		EndMinutes:   660,
		Status:       entity.BookingStatusPending,
	}

	var updated *entity.Booking
	bookings := &fakeBookingRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Booking, error) {
			return existing, nil
		},
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			// The booking's own slot shows up confirmed here; it must be
			// excluded from the conflict check.
			self := *existing
			self.Status = entity.BookingStatusConfirmed
			return []*entity.Booking{&self}, nil
		},
		updateFn: func(_ context.Context, booking *entity.Booking) error {
			updated = booking
			return nil
		},
	}
	svc, _ := newTestBookingService(&fakeRoomRepo{}, bookings)

	start := "10:30"
	_, err := svc.UpdateBooking(context.Background(), userID.String(), bookingID.String(), &request.UpdateBookingRequest{
		StartTime: &start,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 630, updated.StartMinutes)
	assert.Equal(t, 660, updated.EndMinutes)
}
