package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockAvailabilityService struct {
	freeSlotsFn func(ctx context.Context, roomID, date string) (*response.FreeSlotsResponse, error)
	checkFn     func(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityCheckResponse, error)
}

func (m *mockAvailabilityService) GetFreeSlots(ctx context.Context, roomID, date string) (*response.FreeSlotsResponse, error) {
	return m.freeSlotsFn(ctx, roomID, date)
}

func (m *mockAvailabilityService) CheckAvailability(ctx context.Context, req *request.CheckAvailabilityRequest) (*response.AvailabilityCheckResponse, error) {
	return m.checkFn(ctx, req)
}

func TestGetFreeSlots_MissingDate(t *testing.T) {
	handler := NewAvailabilityHandler(&mockAvailabilityService{}, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/api/rooms/{id}/free-slots", handler.GetFreeSlots)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/"+uuid.NewString()+"/free-slots", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFreeSlots_PassesRoomAndDate(t *testing.T) {
	roomID := uuid.NewString()

	var gotRoomID, gotDate string
	service := &mockAvailabilityService{
		freeSlotsFn: func(_ context.Context, roomID, date string) (*response.FreeSlotsResponse, error) {
			gotRoomID = roomID
			gotDate = date
			return &response.FreeSlotsResponse{RoomID: roomID, Date: date}, nil
		},
	}
	handler := NewAvailabilityHandler(service, zap.NewNop())

	router := chi.NewRouter()
	router.Get("/api/rooms/{id}/free-slots", handler.GetFreeSlots)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/"+roomID+"/free-slots?date=2025-06-10", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, roomID, gotRoomID)
	assert.Equal(t, "2025-06-10", gotDate)
}
