package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type AuditLogResponse struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func AuditLogToResponse(auditLog *entity.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         auditLog.ID.String(),
		ActorID:    auditLog.ActorID.String(),
		Action:     auditLog.Action,
		EntityType: auditLog.EntityType,
		EntityID:   auditLog.EntityID,
		Detail:     auditLog.Detail,
		CreatedAt:  auditLog.CreatedAt,
	}
}
