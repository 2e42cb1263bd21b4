package usecase

import (
	"context"
	"fmt"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"

	"go.uber.org/zap"
)

type AuditService interface {
	GetAuditLogs(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.AuditLogResponse], error)
}

type auditService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuditService(repo *repository.Repository, log *zap.Logger) AuditService {
	return &auditService{
		repo: repo,
		log:  log.With(zap.String("service", "audit")),
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.AuditLogResponse], error) {
	logs, err := s.repo.Audit.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get audit logs", zap.Error(err))
		return nil, fmt.Errorf("get audit logs: %w", err)
	}

	total, err := s.repo.Audit.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count audit logs", zap.Error(err))
		return nil, fmt.Errorf("count audit logs: %w", err)
	}

	responses := make([]response.AuditLogResponse, len(logs))
	for i, auditLog := range logs {
		responses[i] = response.AuditLogToResponse(auditLog)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}
