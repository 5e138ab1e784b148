// Package audit contains the append-only audit trail model.
//
// Every successful mutation of an aggregate produces a Record capturing who
// changed (entity type and id), what happened (action) and the full state of
// the entity after the change (a JSON snapshot). Records are immutable once
// written; the trail only ever grows.
package audit
