// Package auditrepo persists audit trail records in Postgres. The table is
// append-only: rows are inserted and read, never updated or deleted.
package auditrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditRecordDTO represents the database structure for persisting audit
// records. Seq orders the trail; reads return the highest sequence first.
type AuditRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType string    `gorm:"index"`
	EntityID   uuid.UUID `gorm:"type:uuid;index"`
	Action     string
	Snapshot   string `gorm:"type:jsonb"`
	RecordedAt time.Time `gorm:"index"`
	Seq        int64     `gorm:"autoIncrement;<-:false;index"`
}

// TableName specifies the database table name for audit records.
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(r *audit.Record) AuditRecordDTO {
	return AuditRecordDTO{
		ID:         r.ID().Bytes(),
		EntityType: r.EntityType(),
		EntityID:   r.EntityID().Bytes(),
		Action:     r.Action(),
		Snapshot:   r.Snapshot(),
		RecordedAt: r.RecordedAt(),
	}
}

// toDomain converts a database DTO to an audit record.
func toDomain(dto AuditRecordDTO) (*audit.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreRecord(id, dto.EntityType, entityID, dto.Action, dto.Snapshot, dto.RecordedAt)
}
