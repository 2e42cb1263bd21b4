package repository

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows admin booking listings; nil fields are ignored.
type BookingFilter struct {
	RoomID *uuid.UUID
	Status *entity.BookingStatus
	Date   *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateBatch(ctx context.Context, bookings []*entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	FindConfirmedByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error)
	FindByRoomBetween(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Booking, error)
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	UpdateStatusByGroup(ctx context.Context, groupID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, room_id, user_id, purpose, date, start_minutes, end_minutes,
	status, is_recurring, recurrence_pattern, recurrence_end_date, recurring_group_id,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.RoomID,
		&booking.UserID,
		&booking.Purpose,
		&booking.Date,
		&booking.StartMinutes,
		&booking.EndMinutes,
		&booking.Status,
		&booking.IsRecurring,
		&booking.RecurrencePattern,
		&booking.RecurrenceEndDate,
		&booking.RecurringGroupID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.RoomID,
		booking.UserID,
		booking.Purpose,
		booking.Date,
		booking.StartMinutes,
		booking.EndMinutes,
		booking.Status,
		booking.IsRecurring,
		booking.RecurrencePattern,
		booking.RecurrenceEndDate,
		booking.RecurringGroupID,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

// CreateBatch inserts all occurrences of a recurring series in one
// transaction so a half-written series never persists.
func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	for _, booking := range bookings {
		_, err := tx.Exec(ctx, query,
			booking.ID,
			booking.Reference,
			booking.RoomID,
			booking.UserID,
			booking.Purpose,
			booking.Date,
			booking.StartMinutes,
			booking.EndMinutes,
			booking.Status,
			booking.IsRecurring,
			booking.RecurrencePattern,
			booking.RecurrenceEndDate,
			booking.RecurringGroupID,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking in batch",
				zap.Error(err),
				zap.String("reference", booking.Reference),
			)
			return fmt.Errorf("create booking %s in batch: %w", booking.Reference, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking batch: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, start_minutes DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func buildBookingFilter(filter BookingFilter) (string, []any) {
	clause := ""
	var args []any
	argN := 1

	if filter.RoomID != nil {
		clause += fmt.Sprintf(" AND room_id = $%d", argN)
		args = append(args, *filter.RoomID)
		argN++
	}
	if filter.Status != nil {
		clause += fmt.Sprintf(" AND status = $%d", argN)
		args = append(args, *filter.Status)
		argN++
	}
	if filter.Date != nil {
		clause += fmt.Sprintf(" AND date = $%d", argN)
		args = append(args, *filter.Date)
		argN++
	}

	return clause, args
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	clause, args := buildBookingFilter(filter)

	query := fmt.Sprintf(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE 1=1%s
		ORDER BY date DESC, start_minutes DESC
		LIMIT $%d OFFSET $%d
	`, clause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, filter BookingFilter) (int64, error) {
	clause, args := buildBookingFilter(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM bookings WHERE 1=1%s`, clause)

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET room_id = $2, purpose = $3, date = $4, start_minutes = $5,
		    end_minutes = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.Purpose,
		booking.Date,
		booking.StartMinutes,
		booking.EndMinutes,
		booking.Status,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND date = $2
		ORDER BY start_minutes
	`

	rows, err := r.db.Query(ctx, query, roomID, date)
	if err != nil {
		r.log.Error("Failed to find bookings by room and date",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings by room %s date %s: %w",
			roomID.String(), date.Format("2006-01-02"), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindConfirmedByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND date = $2 AND status = 'confirmed'
		ORDER BY start_minutes
	`

	rows, err := r.db.Query(ctx, query, roomID, date)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings by room and date",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find confirmed bookings by room %s date %s: %w",
			roomID.String(), date.Format("2006-01-02"), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindByRoomBetween(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, start_minutes
	`

	rows, err := r.db.Query(ctx, query, roomID, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings by room between dates",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find bookings by room %s between %s and %s: %w",
			roomID.String(), from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE recurring_group_id = $1
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		r.log.Error("Failed to find bookings by group ID",
			zap.Error(err),
			zap.String("group_id", groupID.String()),
		)
		return nil, fmt.Errorf("find bookings by group ID %s: %w", groupID.String(), err)
	}

	return r.collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// UpdateStatusByGroup moves every non-terminal occurrence of a recurring
// series to the given status.
func (r *bookingRepository) UpdateStatusByGroup(ctx context.Context, groupID uuid.UUID, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE recurring_group_id = $1 AND status IN ('pending', 'confirmed')
	`

	result, err := r.db.Exec(ctx, query, groupID, status)
	if err != nil {
		r.log.Error("Failed to update booking group status",
			zap.Error(err),
			zap.String("group_id", groupID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking group %s status to %s: %w", groupID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no updatable bookings in group %s", groupID.String())
	}

	return nil
}
