package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Building     BuildingService
	Category     CategoryService
	Room         RoomService
	Booking      BookingService
	Availability AvailabilityService
	Calendar     CalendarService
	User         UserService
	Audit        AuditService
}

func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, logger),
		Building:     NewBuildingService(repo, logger),
		Category:     NewCategoryService(repo, logger),
		Room:         NewRoomService(repo, logger),
		Booking:      NewBookingService(repo, config, logger),
		Availability: NewAvailabilityService(repo, config, logger),
		Calendar:     NewCalendarService(repo, logger),
		User:         NewUserService(repo, logger),
		Audit:        NewAuditService(repo, logger),
	}
}

// recordAudit appends an audit trail entry. Failures are logged but never
// fail the operation being audited.
func recordAudit(ctx context.Context, repo repository.AuditRepository, log *zap.Logger,
	actorID uuid.UUID, action, entityType, entityID, detail string) {

	auditLog := &entity.AuditLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}

	if err := repo.Create(ctx, auditLog); err != nil {
		log.Warn("Failed to record audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.String("entity_id", entityID),
		)
	}
}
