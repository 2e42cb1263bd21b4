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

type BuildingHandler struct {
	service usecase.BuildingService
	log     *zap.Logger
}

func NewBuildingHandler(service usecase.BuildingService, log *zap.Logger) *BuildingHandler {
	return &BuildingHandler{
		service: service,
		log:     log,
	}
}

// GetBuildings handles GET /api/buildings
func (h *BuildingHandler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.service.GetBuildings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get buildings")
		return
	}

	utils.ResponseSuccess(w, "Buildings retrieved successfully", buildings)
}

// GetBuildingByID handles GET /api/buildings/{id}
func (h *BuildingHandler) GetBuildingByID(w http.ResponseWriter, r *http.Request) {
	buildingID := chi.URLParam(r, "id")

	building, err := h.service.GetBuildingByID(r.Context(), buildingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get building by ID")
		return
	}

	utils.ResponseSuccess(w, "Building retrieved successfully", building)
}

// CreateBuilding handles POST /api/admin/buildings
func (h *BuildingHandler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.BuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	building, err := h.service.CreateBuilding(r.Context(), actorID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create building")
		return
	}

	utils.ResponseCreated(w, "Building created successfully", building)
}

// UpdateBuilding handles PUT /api/admin/buildings/{id}
func (h *BuildingHandler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	buildingID := chi.URLParam(r, "id")

	var req request.BuildingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	building, err := h.service.UpdateBuilding(r.Context(), actorID.String(), buildingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update building")
		return
	}

	utils.ResponseSuccess(w, "Building updated successfully", building)
}

// DeleteBuilding handles DELETE /api/admin/buildings/{id}
func (h *BuildingHandler) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	buildingID := chi.URLParam(r, "id")

	if err := h.service.DeleteBuilding(r.Context(), actorID.String(), buildingID); err != nil {
		handleServiceError(w, h.log, err, "delete building")
		return
	}

	utils.ResponseSuccess(w, "Building deleted successfully", nil)
}
