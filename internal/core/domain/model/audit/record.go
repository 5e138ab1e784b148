package audit

import (
	"encoding/json"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// Mutation action names recorded in the audit trail.
const (
	ActionCreated = "Created"
	ActionUpdated = "Updated"
	ActionDeleted = "Deleted"
)

// StatusChangedAction builds the action name for a lifecycle transition,
// e.g. "StatusChanged:Paid".
func StatusChangedAction(status string) string {
	return "StatusChanged:" + status
}

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord or RestoreRecord factory methods.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Auditable is implemented by every aggregate whose mutations are recorded in
// the audit trail. Implementations return their identity, a stable entity
// type name and a serializable snapshot of their current state.
type Auditable interface {
	AuditID() kernel.UUID
	AuditEntityType() string
	AuditSnapshot() any
}

// Record is a single immutable entry in the audit trail.
type Record struct {
	id         kernel.UUID
	entityType string
	entityID   kernel.UUID
	action     string
	snapshot   string
	recordedAt time.Time

	isConstructed bool
}

// NewRecord creates an audit entry for a mutation of the given entity.
// The entity's snapshot is serialized to JSON at call time, so later changes
// to the entity do not alter the record.
func NewRecord(entity Auditable, action string) (*Record, error) {
	if entity == nil {
		return nil, errs.NewValueIsRequiredError("entity")
	}

	snapshot, err := json.Marshal(entity.AuditSnapshot())
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("snapshot", err)
	}

	record := &Record{
		snapshot:      string(snapshot),
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(kernel.NewUUID()),
		record.setEntityType(entity.AuditEntityType()),
		record.setEntityID(entity.AuditID()),
		record.setAction(action),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	entityType string,
	entityID kernel.UUID,
	action string,
	snapshot string,
	recordedAt time.Time,
) (*Record, error) {
	record := &Record{
		snapshot:      snapshot,
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setEntityType(entityType),
		record.setEntityID(entityID),
		record.setAction(action),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed through a
// factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// EntityType returns the type name of the audited entity.
func (r *Record) EntityType() string {
	return r.entityType
}

// EntityID returns the identifier of the audited entity.
func (r *Record) EntityID() kernel.UUID {
	return r.entityID
}

// Action returns the recorded mutation action.
func (r *Record) Action() string {
	return r.action
}

// Snapshot returns the JSON state of the entity after the mutation.
func (r *Record) Snapshot() string {
	return r.snapshot
}

// RecordedAt returns the UTC time the record was created.
func (r *Record) RecordedAt() time.Time {
	return r.recordedAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType")
	}
	r.entityType = entityType
	return nil
}

func (r *Record) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("entityId", err)
	}
	r.entityID = entityID
	return nil
}

func (r *Record) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	r.action = action
	return nil
}
