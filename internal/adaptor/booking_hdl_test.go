package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBookingService struct {
	createFn  func(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	getMineFn func(ctx context.Context, userID string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	getByIDFn func(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string) (*response.BookingResponse, error)
	updateFn  func(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	cancelFn  func(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string, wholeSeries bool) error
	listFn    func(ctx context.Context, filter usecase.BookingListFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	confirmFn func(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	declineFn func(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error)
	deleteFn  func(ctx context.Context, actorID, bookingID string) error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockBookingService) GetMyBookings(ctx context.Context, userID string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return m.getMineFn(ctx, userID, page)
}

func (m *mockBookingService) GetBookingByID(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	return m.getByIDFn(ctx, requesterID, requesterRole, bookingID)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, userID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	return m.updateFn(ctx, userID, bookingID, req)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, requesterID string, requesterRole entity.UserRole, bookingID string, wholeSeries bool) error {
	return m.cancelFn(ctx, requesterID, requesterRole, bookingID, wholeSeries)
}

func (m *mockBookingService) ListBookings(ctx context.Context, filter usecase.BookingListFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return m.listFn(ctx, filter, page)
}

func (m *mockBookingService) ConfirmBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	return m.confirmFn(ctx, actorID, bookingID)
}

func (m *mockBookingService) DeclineBooking(ctx context.Context, actorID, bookingID string) (*response.BookingResponse, error) {
	return m.declineFn(ctx, actorID, bookingID)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, actorID, bookingID string) error {
	return m.deleteFn(ctx, actorID, bookingID)
}

func authedRequest(method, target, body string, userID uuid.UUID, role string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), userID, role)
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreateBooking_Created(t *testing.T) {
	userID := uuid.New()
	service := &mockBookingService{
		createFn: func(_ context.Context, gotUserID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
			assert.Equal(t, userID.String(), gotUserID)
			assert.Equal(t, "10:00", req.StartTime)
			return &response.CreateBookingResponse{Occurrences: 1}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	body := `{"room_id":"` + uuid.NewString() + `","purpose":"Standup","date":"2025-06-10","start_time":"10:00","end_time":"10:30"}`
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", body, userID, "member"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["status"])
}

func TestCreateBooking_ConflictMapsTo409(t *testing.T) {
	service := &mockBookingService{
		createFn: func(_ context.Context, _ string, _ *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
			return nil, fmt.Errorf("booking conflict: room is already booked on 2025-06-10 between 10:00 and 11:00")
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", `{}`, uuid.New(), "member"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	handler := NewBookingHandler(&mockBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	handler := NewBookingHandler(&mockBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", `{not json`, uuid.New(), "member"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBooking_EmptyBodyCancelsSingleOccurrence(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	var gotWholeSeries bool
	service := &mockBookingService{
		cancelFn: func(_ context.Context, requesterID string, _ entity.UserRole, gotBookingID string, wholeSeries bool) error {
			assert.Equal(t, userID.String(), requesterID)
			assert.Equal(t, bookingID.String(), gotBookingID)
			gotWholeSeries = wholeSeries
			return nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Post("/api/bookings/{id}/cancel", handler.CancelBooking)

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", "", userID, "member")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotWholeSeries)
}

func TestCancelBooking_WholeSeriesFlag(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	var gotWholeSeries bool
	service := &mockBookingService{
		cancelFn: func(_ context.Context, _ string, _ entity.UserRole, _ string, wholeSeries bool) error {
			gotWholeSeries = wholeSeries
			return nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Post("/api/bookings/{id}/cancel", handler.CancelBooking)

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", `{"whole_series":true}`, userID, "member")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotWholeSeries)
}

func TestGetBookingByID_ForbiddenMapsTo403(t *testing.T) {
	service := &mockBookingService{
		getByIDFn: func(_ context.Context, _ string, _ entity.UserRole, bookingID string) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("not allowed to view booking %s", bookingID)
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/api/bookings/{id}", handler.GetBookingByID)

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/bookings/"+uuid.NewString(), "", uuid.New(), "member")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConfirmBooking_NotFoundMapsTo404(t *testing.T) {
	service := &mockBookingService{
		confirmFn: func(_ context.Context, _, bookingID string) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("booking %s not found", bookingID)
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Post("/api/admin/bookings/{id}/confirm", handler.ConfirmBooking)

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/admin/bookings/"+uuid.NewString()+"/confirm", "", uuid.New(), "admin")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBookings_PassesFilter(t *testing.T) {
	var gotFilter usecase.BookingListFilter
	var gotPage request.PaginatedRequest
	service := &mockBookingService{
		listFn: func(_ context.Context, filter usecase.BookingListFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
			gotFilter = filter
			gotPage = page
			return response.NewPaginatedResponse([]response.BookingResponse{}, page.Page, page.PerPage, 0), nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/admin/bookings?status=pending&date=2025-06-10&page=2&per_page=25", "", uuid.New(), "admin")
	handler.ListBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", gotFilter.Status)
	assert.Equal(t, "2025-06-10", gotFilter.Date)
	assert.Equal(t, 2, gotPage.Page)
	assert.Equal(t, 25, gotPage.PerPage)
}
