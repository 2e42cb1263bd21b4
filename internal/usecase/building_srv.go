package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BuildingService interface {
	CreateBuilding(ctx context.Context, actorID string, req *request.BuildingRequest) (*response.BuildingResponse, error)
	GetBuildings(ctx context.Context) ([]response.BuildingResponse, error)
	GetBuildingByID(ctx context.Context, buildingID string) (*response.BuildingResponse, error)
	UpdateBuilding(ctx context.Context, actorID, buildingID string, req *request.BuildingUpdateRequest) (*response.BuildingResponse, error)
	DeleteBuilding(ctx context.Context, actorID, buildingID string) error
}

type buildingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBuildingService(repo *repository.Repository, log *zap.Logger) BuildingService {
	return &buildingService{
		repo: repo,
		log:  log.With(zap.String("service", "building")),
	}
}

func (s *buildingService) CreateBuilding(ctx context.Context, actorID string, req *request.BuildingRequest) (*response.BuildingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create building validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	now := time.Now()
	building := &entity.Building{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}

	if err := s.repo.Building.Create(ctx, building); err != nil {
		s.log.Error("Failed to create building", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create building: %w", err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"building.create", "building", building.ID.String(), building.Name)

	s.log.Info("Building created",
		zap.String("building_id", building.ID.String()),
		zap.String("name", building.Name))

	resp := response.BuildingToResponse(building)
	return &resp, nil
}

func (s *buildingService) GetBuildings(ctx context.Context) ([]response.BuildingResponse, error) {
	buildings, err := s.repo.Building.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get buildings", zap.Error(err))
		return nil, fmt.Errorf("get buildings: %w", err)
	}

	responses := make([]response.BuildingResponse, len(buildings))
	for i, building := range buildings {
		responses[i] = response.BuildingToResponse(building)
	}

	return responses, nil
}

func (s *buildingService) GetBuildingByID(ctx context.Context, buildingID string) (*response.BuildingResponse, error) {
	id, err := uuid.Parse(buildingID)
	if err != nil {
		return nil, fmt.Errorf("invalid building ID format %s: %w", buildingID, err)
	}

	building, err := s.repo.Building.FindByID(ctx, id)
	if err != nil || building == nil {
		return nil, fmt.Errorf("building %s not found", buildingID)
	}

	resp := response.BuildingToResponse(building)
	return &resp, nil
}

func (s *buildingService) UpdateBuilding(ctx context.Context, actorID, buildingID string, req *request.BuildingUpdateRequest) (*response.BuildingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update building validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	id, err := uuid.Parse(buildingID)
	if err != nil {
		return nil, fmt.Errorf("invalid building ID format %s: %w", buildingID, err)
	}

	building, err := s.repo.Building.FindByID(ctx, id)
	if err != nil || building == nil {
		return nil, fmt.Errorf("building %s not found", buildingID)
	}

	if req.Name != nil {
		building.Name = *req.Name
	}
	if req.Address != nil {
		building.Address = *req.Address
	}
	if req.City != nil {
		building.City = *req.City
	}
	building.UpdatedAt = time.Now()

	if err := s.repo.Building.Update(ctx, building); err != nil {
		s.log.Error("Failed to update building", zap.Error(err), zap.String("building_id", buildingID))
		return nil, fmt.Errorf("update building %s: %w", buildingID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"building.update", "building", building.ID.String(), building.Name)

	s.log.Info("Building updated", zap.String("building_id", buildingID))

	resp := response.BuildingToResponse(building)
	return &resp, nil
}

func (s *buildingService) DeleteBuilding(ctx context.Context, actorID, buildingID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	id, err := uuid.Parse(buildingID)
	if err != nil {
		return fmt.Errorf("invalid building ID format %s: %w", buildingID, err)
	}

	// A building with rooms cannot be removed
	rooms, err := s.repo.Room.FindAll(ctx, repository.RoomFilter{BuildingID: &id})
	if err != nil {
		s.log.Error("Failed to check building rooms", zap.Error(err), zap.String("building_id", buildingID))
		return fmt.Errorf("check building rooms: %w", err)
	}
	if len(rooms) > 0 {
		return fmt.Errorf("cannot delete building %s: %d rooms still assigned", buildingID, len(rooms))
	}

	if err := s.repo.Building.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete building", zap.Error(err), zap.String("building_id", buildingID))
		return fmt.Errorf("delete building %s: %w", buildingID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"building.delete", "building", buildingID, "")

	return nil
}
