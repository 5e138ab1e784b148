package audit_test

import (
	"encoding/json"
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/audit"
	"ordertrack/internal/core/domain/model/client"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	newTestClient := func(t *testing.T) *client.Client {
		t.Helper()
		c, err := client.NewClient(kernel.NewUUID(), "Maria Silva", "52998224725")
		require.NoError(t, err)
		return c
	}

	t.Run("should capture entity identity, type and action", func(t *testing.T) {
		c := newTestClient(t)

		r, err := audit.NewRecord(c, audit.ActionCreated)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.EntityID().IsEqual(c.ID()))
		assert.Equal(t, "Client", r.EntityType())
		assert.Equal(t, "Created", r.Action())
		assert.WithinDuration(t, time.Now().UTC(), r.RecordedAt(), time.Minute)
	})

	t.Run("should serialize the snapshot as JSON", func(t *testing.T) {
		c := newTestClient(t)

		r, err := audit.NewRecord(c, audit.ActionCreated)

		require.NoError(t, err)

		var snapshot map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.Snapshot()), &snapshot))
		assert.Equal(t, c.ID().String(), snapshot["id"])
		assert.Equal(t, "Maria Silva", snapshot["name"])
		assert.Equal(t, "52998224725", snapshot["cpf"])
	})

	t.Run("should freeze the snapshot at record time", func(t *testing.T) {
		c := newTestClient(t)

		r, err := audit.NewRecord(c, audit.ActionCreated)
		require.NoError(t, err)
		require.NoError(t, c.Edit("Joao Souza", "11144477735"))

		assert.Contains(t, r.Snapshot(), "Maria Silva")
		assert.NotContains(t, r.Snapshot(), "Joao Souza")
	})

	t.Run("should record order status transitions", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
		require.NoError(t, err)
		_, err = o.Pay()
		require.NoError(t, err)

		r, err := audit.NewRecord(o, audit.StatusChangedAction(o.Status().String()))

		require.NoError(t, err)
		assert.Equal(t, "StatusChanged:Paid", r.Action())
		assert.Equal(t, "Order", r.EntityType())
		assert.Contains(t, r.Snapshot(), `"status":"Paid"`)
	})

	t.Run("should assign a fresh record id per entry", func(t *testing.T) {
		c := newTestClient(t)

		first, err := audit.NewRecord(c, audit.ActionCreated)
		require.NoError(t, err)
		second, err := audit.NewRecord(c, audit.ActionUpdated)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})

	t.Run("should fail with nil entity", func(t *testing.T) {
		r, err := audit.NewRecord(nil, audit.ActionCreated)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "value is required: entity")
	})

	t.Run("should fail with empty action", func(t *testing.T) {
		r, err := audit.NewRecord(newTestClient(t), "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "value is required: action")
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should restore record from persisted fields", func(t *testing.T) {
		id := kernel.NewUUID()
		entityID := kernel.NewUUID()
		recordedAt := time.Date(2026, 5, 2, 17, 4, 11, 0, time.UTC)

		r, err := audit.RestoreRecord(id, "Product", entityID, audit.ActionDeleted, `{"id":"x"}`, recordedAt)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Product", r.EntityType())
		assert.Equal(t, "Deleted", r.Action())
		assert.Equal(t, `{"id":"x"}`, r.Snapshot())
		assert.Equal(t, recordedAt, r.RecordedAt())
	})

	t.Run("should fail with empty entity type", func(t *testing.T) {
		r, err := audit.RestoreRecord(kernel.NewUUID(), "", kernel.NewUUID(), audit.ActionCreated, "{}", time.Now())

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "value is required: entityType")
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should fail for zero-value record", func(t *testing.T) {
		var r audit.Record

		assert.ErrorIs(t, r.Validate(), audit.ErrRecordIsNotConstructed)
	})
}

func TestStatusChangedAction(t *testing.T) {
	t.Run("should prefix the status name", func(t *testing.T) {
		assert.Equal(t, "StatusChanged:Canceled", audit.StatusChangedAction("Canceled"))
	})
}
