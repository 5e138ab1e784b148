package auditrepo

import (
	"context"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends a record to the trail.
func (r *GormAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("add audit record", err)
	}
	return nil
}

// GetAll retrieves every record, newest first.
func (r *GormAuditRepository) GetAll(ctx context.Context) ([]*audit.Record, error) {
	var dtos []AuditRecordDTO
	if err := r.db.WithContext(ctx).Order("seq DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list audit records", err)
	}

	return toDomainAll(dtos)
}

// GetPaged retrieves one page of records, newest first, plus the total count.
func (r *GormAuditRepository) GetPaged(ctx context.Context, page, pageSize int) ([]*audit.Record, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	var total int64
	if err := r.db.WithContext(ctx).Model(&AuditRecordDTO{}).Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageError("count audit records", err)
	}

	var dtos []AuditRecordDTO
	err := r.db.WithContext(ctx).
		Order("seq DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewStorageError("list audit records", err)
	}

	records, err := toDomainAll(dtos)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func toDomainAll(dtos []AuditRecordDTO) ([]*audit.Record, error) {
	records := make([]*audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
