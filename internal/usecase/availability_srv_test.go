package usecase

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAvailabilityService(rooms *fakeRoomRepo, bookings *fakeBookingRepo, now time.Time) *availabilityService {
	return &availabilityService{
		repo: &repository.Repository{
			Room:    rooms,
			Booking: bookings,
			Audit:   &fakeAuditRepo{},
		},
		config: testConfig(),
		log:    zap.NewNop(),
		now:    func() time.Time { return now },
	}
}

func slotStrings(intervals []response.IntervalResponse) [][2]string {
	out := make([][2]string, len(intervals))
	for i, iv := range intervals {
		out[i] = [2]string{iv.Start, iv.End}
	}
	return out
}

func TestGetFreeSlots_BufferAroundConfirmedBooking(t *testing.T) {
	roomID := uuid.New()

	bookings := &fakeBookingRepo{
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{confirmedBooking(roomID, 600, 660)}, nil
		},
	}
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestAvailabilityService(activeRoom(roomID), bookings, now)

	resp, err := svc.GetFreeSlots(context.Background(), roomID.String(), "2025-06-10")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"08:00", "09:30"},
		{"11:30", "22:00"},
	}, slotStrings(resp.FreeIntervals))
	assert.Equal(t, 30, resp.BufferMinutes)
}

func TestGetFreeSlots_EmptyDay(t *testing.T) {
	roomID := uuid.New()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestAvailabilityService(activeRoom(roomID), &fakeBookingRepo{}, now)

	resp, err := svc.GetFreeSlots(context.Background(), roomID.String(), "2025-06-10")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"08:00", "22:00"}}, slotStrings(resp.FreeIntervals))
}

func TestGetFreeSlots_TodayClipsElapsedTime(t *testing.T) {
	roomID := uuid.New()
	now := time.Date(2025, 6, 10, 13, 15, 0, 0, time.UTC)
	svc := newTestAvailabilityService(activeRoom(roomID), &fakeBookingRepo{}, now)

	resp, err := svc.GetFreeSlots(context.Background(), roomID.String(), "2025-06-10")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"13:15", "22:00"}}, slotStrings(resp.FreeIntervals))
}

func TestGetFreeSlots_RoomNotFound(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestAvailabilityService(&fakeRoomRepo{}, &fakeBookingRepo{}, now)

	_, err := svc.GetFreeSlots(context.Background(), uuid.New().String(), "2025-06-10")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCheckAvailability_IgnoresBuffer(t *testing.T) {
	roomID := uuid.New()

	bookings := &fakeBookingRepo{
		findConfirmedByRoomAndDateFn: func(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Booking, error) {
			return []*entity.Booking{confirmedBooking(roomID, 600, 660)}, nil
		},
	}
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestAvailabilityService(activeRoom(roomID), bookings, now)

	// Inside the display buffer but not overlapping: still bookable.
	resp, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomID:    roomID.String(),
		Date:      "2025-06-10",
		StartTime: "09:30",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)

	resp, err = svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomID:    roomID.String(),
		Date:      "2025-06-10",
		StartTime: "10:30",
		EndTime:   "11:30",
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestCheckAvailability_StartAfterEnd(t *testing.T) {
	roomID := uuid.New()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestAvailabilityService(activeRoom(roomID), &fakeBookingRepo{}, now)

	_, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomID:    roomID.String(),
		Date:      "2025-06-10",
		StartTime: "12:00",
		EndTime:   "11:00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "before end time")
}
