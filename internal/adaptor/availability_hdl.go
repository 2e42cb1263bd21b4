package adaptor

import (
	"encoding/json"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

// GetFreeSlots handles GET /api/rooms/{id}/free-slots?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetFreeSlots(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter date is required", nil)
		return
	}

	slots, err := h.service.GetFreeSlots(r.Context(), roomID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get free slots")
		return
	}

	utils.ResponseSuccess(w, "Free slots retrieved successfully", slots)
}

// CheckAvailability handles POST /api/bookings/check-availability
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "Availability checked successfully", result)
}
