package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes for the repository interfaces. Unset fields behave
// like an empty database instead of panicking.

type fakeRoomRepo struct {
	createFn   func(ctx context.Context, room *entity.Room) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	findAllFn  func(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error)
	updateFn   func(ctx context.Context, room *entity.Room) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, room)
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeRoomRepo) FindAll(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx, filter)
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, room)
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeBookingRepo struct {
	createFn                     func(ctx context.Context, booking *entity.Booking) error
	createBatchFn                func(ctx context.Context, bookings []*entity.Booking) error
	findByIDFn                   func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findByUserIDFn               func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	countByUserIDFn              func(ctx context.Context, userID uuid.UUID) (int64, error)
	findAllFn                    func(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error)
	countAllFn                   func(ctx context.Context, filter repository.BookingFilter) (int64, error)
	updateFn                     func(ctx context.Context, booking *entity.Booking) error
	deleteFn                     func(ctx context.Context, id uuid.UUID) error
	findByRoomAndDateFn          func(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	findConfirmedByRoomAndDateFn func(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	findByRoomBetweenFn          func(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Booking, error)
	findByGroupIDFn              func(ctx context.Context, groupID uuid.UUID) ([]*entity.Booking, error)
	updateStatusFn               func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	updateStatusByGroupFn        func(ctx context.Context, groupID uuid.UUID, status entity.BookingStatus) error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, booking)
}

func (f *fakeBookingRepo) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	if f.createBatchFn == nil {
		return nil
	}
	return f.createBatchFn(ctx, bookings)
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	if f.findByUserIDFn == nil {
		return nil, nil
	}
	return f.findByUserIDFn(ctx, userID, limit, offset)
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if f.countByUserIDFn == nil {
		return 0, nil
	}
	return f.countByUserIDFn(ctx, userID)
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx, filter, limit, offset)
}

func (f *fakeBookingRepo) CountAll(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	if f.countAllFn == nil {
		return 0, nil
	}
	return f.countAllFn(ctx, filter)
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, booking)
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeBookingRepo) FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	if f.findByRoomAndDateFn == nil {
		return nil, nil
	}
	return f.findByRoomAndDateFn(ctx, roomID, date)
}

func (f *fakeBookingRepo) FindConfirmedByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	if f.findConfirmedByRoomAndDateFn == nil {
		return nil, nil
	}
	return f.findConfirmedByRoomAndDateFn(ctx, roomID, date)
}

func (f *fakeBookingRepo) FindByRoomBetween(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	if f.findByRoomBetweenFn == nil {
		return nil, nil
	}
	return f.findByRoomBetweenFn(ctx, roomID, from, to)
}

func (f *fakeBookingRepo) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Booking, error) {
	if f.findByGroupIDFn == nil {
		return nil, nil
	}
	return f.findByGroupIDFn(ctx, groupID)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if f.updateStatusFn == nil {
		return nil
	}
	return f.updateStatusFn(ctx, bookingID, status)
}

func (f *fakeBookingRepo) UpdateStatusByGroup(ctx context.Context, groupID uuid.UUID, status entity.BookingStatus) error {
	if f.updateStatusByGroupFn == nil {
		return nil
	}
	return f.updateStatusByGroupFn(ctx, groupID, status)
}

type fakeAuditRepo struct {
	createFn func(ctx context.Context, log *entity.AuditLog) error
	entries  []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	f.entries = append(f.entries, auditLog)
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, auditLog)
}

func (f *fakeAuditRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	return f.entries, nil
}

func (f *fakeAuditRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.entries)), nil
}
