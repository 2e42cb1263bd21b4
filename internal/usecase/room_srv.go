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

// RoomListFilter is the query-string filter for room listings. String IDs
// come straight from the URL and are parsed here.
type RoomListFilter struct {
	BuildingID string
	CategoryID string
	ActiveOnly bool
}

type RoomService interface {
	CreateRoom(ctx context.Context, actorID string, req *request.RoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context, filter RoomListFilter) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, actorID, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, actorID, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, actorID string, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	buildingID, err := uuid.Parse(req.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("invalid building ID format %s: %w", req.BuildingID, err)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", req.CategoryID, err)
	}

	building, err := s.repo.Building.FindByID(ctx, buildingID)
	if err != nil || building == nil {
		return nil, fmt.Errorf("building %s not found", req.BuildingID)
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil || category == nil {
		return nil, fmt.Errorf("category %s not found", req.CategoryID)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BuildingID: buildingID,
		CategoryID: categoryID,
		Name:       req.Name,
		Capacity:   req.Capacity,
		Floor:      req.Floor,
		IsActive:   true,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"room.create", "room", room.ID.String(), room.Name)

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("building_id", buildingID.String()),
		zap.String("name", room.Name))

	resp := response.RoomToResponse(room)
	resp.BuildingName = building.Name
	resp.CategoryName = category.Name
	return &resp, nil
}

func (s *roomService) GetRooms(ctx context.Context, filter RoomListFilter) ([]response.RoomResponse, error) {
	repoFilter := repository.RoomFilter{ActiveOnly: filter.ActiveOnly}

	if filter.BuildingID != "" {
		id, err := uuid.Parse(filter.BuildingID)
		if err != nil {
			return nil, fmt.Errorf("invalid building ID format %s: %w", filter.BuildingID, err)
		}
		repoFilter.BuildingID = &id
	}
	if filter.CategoryID != "" {
		id, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format %s: %w", filter.CategoryID, err)
		}
		repoFilter.CategoryID = &id
	}

	rooms, err := s.repo.Room.FindAll(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}

	return responses, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	resp := response.RoomToResponse(room)
	if building, err := s.repo.Building.FindByID(ctx, room.BuildingID); err == nil && building != nil {
		resp.BuildingName = building.Name
	}
	if category, err := s.repo.Category.FindByID(ctx, room.CategoryID); err == nil && category != nil {
		resp.CategoryName = category.Name
	}
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, actorID, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	if req.BuildingID != nil {
		buildingID, err := uuid.Parse(*req.BuildingID)
		if err != nil {
			return nil, fmt.Errorf("invalid building ID format %s: %w", *req.BuildingID, err)
		}
		if building, err := s.repo.Building.FindByID(ctx, buildingID); err != nil || building == nil {
			return nil, fmt.Errorf("building %s not found", *req.BuildingID)
		}
		room.BuildingID = buildingID
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format %s: %w", *req.CategoryID, err)
		}
		if category, err := s.repo.Category.FindByID(ctx, categoryID); err != nil || category == nil {
			return nil, fmt.Errorf("category %s not found", *req.CategoryID)
		}
		room.CategoryID = categoryID
	}
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room %s: %w", roomID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"room.update", "room", room.ID.String(), room.Name)

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, actorID, roomID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}

	recordAudit(ctx, s.repo.Audit, s.log, actorUUID,
		"room.delete", "room", roomID, room.Name)

	return nil
}
