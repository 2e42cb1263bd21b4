package adaptor

import (
	"net/http"

	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuditHandler struct {
	service usecase.AuditService
	log     *zap.Logger
}

func NewAuditHandler(service usecase.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		log:     log,
	}
}

// GetAuditLogs handles GET /api/admin/audit-logs?page=&per_page=
func (h *AuditHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.GetAuditLogs(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get audit logs")
		return
	}

	utils.ResponseSuccess(w, "Audit logs retrieved successfully", logs)
}
