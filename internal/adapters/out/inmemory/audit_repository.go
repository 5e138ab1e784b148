package inmemory

import (
	"context"
	"sync"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/ports"
)

// AuditRepository is the in-memory implementation of ports.AuditRepository.
// The trail is an append-only slice; reads return newest entries first.
type AuditRepository struct {
	log *auditLog
}

type auditLog struct {
	mu      sync.RWMutex
	records []*audit.Record
}

func newAuditRepository(log *auditLog) *AuditRepository {
	return &AuditRepository{log: log}
}

// Add appends a record to the trail.
func (r *AuditRepository) Add(_ context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	r.log.records = append(r.log.records, record)
	return nil
}

// GetAll retrieves every record, newest first.
func (r *AuditRepository) GetAll(_ context.Context) ([]*audit.Record, error) {
	r.log.mu.RLock()
	defer r.log.mu.RUnlock()

	return reverseRecords(r.log.records), nil
}

// GetPaged retrieves one page of records, newest first, plus the total count.
func (r *AuditRepository) GetPaged(_ context.Context, page, pageSize int) ([]*audit.Record, int64, error) {
	page, pageSize = ports.NormalizePage(page, pageSize)

	r.log.mu.RLock()
	defer r.log.mu.RUnlock()

	newestFirst := reverseRecords(r.log.records)
	total := int64(len(newestFirst))

	start := (page - 1) * pageSize
	if start >= len(newestFirst) {
		return []*audit.Record{}, total, nil
	}
	end := start + pageSize
	if end > len(newestFirst) {
		end = len(newestFirst)
	}
	return newestFirst[start:end], total, nil
}

func reverseRecords(records []*audit.Record) []*audit.Record {
	out := make([]*audit.Record, len(records))
	for i, record := range records {
		out[len(records)-1-i] = record
	}
	return out
}
