package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BuildingRepository interface {
	Create(ctx context.Context, building *entity.Building) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error)
	FindAll(ctx context.Context) ([]*entity.Building, error)
	Update(ctx context.Context, building *entity.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type buildingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBuildingRepository(db database.PgxIface, log *zap.Logger) BuildingRepository {
	return &buildingRepository{
		db:  db,
		log: log.With(zap.String("repository", "building")),
	}
}

func (r *buildingRepository) Create(ctx context.Context, building *entity.Building) error {
	query := `
		INSERT INTO buildings (id, name, address, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		building.ID,
		building.Name,
		building.Address,
		building.City,
		building.CreatedAt,
		building.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create building",
			zap.Error(err),
			zap.String("name", building.Name),
		)
		return fmt.Errorf("create building %s: %w", building.Name, err)
	}

	return nil
}

func (r *buildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	query := `
		SELECT id, name, address, city, created_at, updated_at
		FROM buildings
		WHERE id = $1
	`

	var building entity.Building
	err := r.db.QueryRow(ctx, query, id).Scan(
		&building.ID,
		&building.Name,
		&building.Address,
		&building.City,
		&building.CreatedAt,
		&building.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find building by ID",
			zap.Error(err),
			zap.String("building_id", id.String()),
		)
		return nil, fmt.Errorf("find building by ID %s: %w", id.String(), err)
	}

	return &building, nil
}

func (r *buildingRepository) FindAll(ctx context.Context) ([]*entity.Building, error) {
	query := `
		SELECT id, name, address, city, created_at, updated_at
		FROM buildings
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find buildings", zap.Error(err))
		return nil, fmt.Errorf("find buildings: %w", err)
	}
	defer rows.Close()

	var buildings []*entity.Building
	for rows.Next() {
		var building entity.Building
		err := rows.Scan(
			&building.ID,
			&building.Name,
			&building.Address,
			&building.City,
			&building.CreatedAt,
			&building.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan building row", zap.Error(err))
			return nil, fmt.Errorf("scan building row: %w", err)
		}
		buildings = append(buildings, &building)
	}

	return buildings, nil
}

func (r *buildingRepository) Update(ctx context.Context, building *entity.Building) error {
	query := `
		UPDATE buildings
		SET name = $2, address = $3, city = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		building.ID,
		building.Name,
		building.Address,
		building.City,
		building.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update building",
			zap.Error(err),
			zap.String("building_id", building.ID.String()),
		)
		return fmt.Errorf("update building %s: %w", building.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("building %s not found", building.ID.String())
	}

	return nil
}

func (r *buildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM buildings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete building",
			zap.Error(err),
			zap.String("building_id", id.String()),
		)
		return fmt.Errorf("delete building %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("building %s not found", id.String())
	}

	r.log.Info("Building deleted", zap.String("building_id", id.String()))
	return nil
}
