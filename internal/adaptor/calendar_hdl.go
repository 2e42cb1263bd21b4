package adaptor

import (
	"net/http"

	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarHandler struct {
	service usecase.CalendarService
	log     *zap.Logger
}

func NewCalendarHandler(service usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log,
	}
}

// GetRoomMonth handles GET /api/rooms/{id}/calendar?month=YYYY-MM
func (h *CalendarHandler) GetRoomMonth(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	month := r.URL.Query().Get("month")
	if month == "" {
		utils.ResponseBadRequest(w, "Query parameter month is required", nil)
		return
	}

	calendar, err := h.service.GetRoomMonth(r.Context(), roomID, month)
	if err != nil {
		handleServiceError(w, h.log, err, "get room calendar")
		return
	}

	utils.ResponseSuccess(w, "Calendar retrieved successfully", calendar)
}
