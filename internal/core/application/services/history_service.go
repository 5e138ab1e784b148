package services

import (
	"context"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/ports"
)

// HistoryService is the read side of the audit trail.
type HistoryService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(uowFactory ports.UnitOfWorkFactory) *HistoryService {
	return &HistoryService{uowFactory: uowFactory}
}

// GetAll retrieves every audit record, newest first.
func (s *HistoryService) GetAll(ctx context.Context) ([]*audit.Record, error) {
	return s.uowFactory.Create().AuditRepository().GetAll(ctx)
}

// GetPaged retrieves one page of audit records, newest first, plus the total
// count.
func (s *HistoryService) GetPaged(ctx context.Context, page, pageSize int) ([]*audit.Record, int64, error) {
	return s.uowFactory.Create().AuditRepository().GetPaged(ctx, page, pageSize)
}
