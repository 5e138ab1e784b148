package kernel_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create distinct valid UUIDs", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.NoError(t, first.Validate())
		assert.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse a canonical UUID string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail on a malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		assert.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through the byte form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should fail on a slice of the wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		assert.Error(t, err)
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDsFromStrings(t *testing.T) {
	t.Run("should preserve order and duplicates", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		raw := []string{first.String(), second.String(), first.String()}

		ids, err := kernel.UUIDsFromStrings(raw)

		require.NoError(t, err)
		require.Len(t, ids, 3)
		assert.True(t, ids[0].IsEqual(first))
		assert.True(t, ids[1].IsEqual(second))
		assert.True(t, ids[2].IsEqual(first))
	})

	t.Run("should fail when any element is malformed", func(t *testing.T) {
		raw := []string{kernel.NewUUID().String(), "oops"}

		_, err := kernel.UUIDsFromStrings(raw)

		assert.Error(t, err)
	})

	t.Run("should round trip with UUIDsToStrings", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		restored, err := kernel.UUIDsFromStrings(kernel.UUIDsToStrings(ids))

		require.NoError(t, err)
		assert.Equal(t, ids, restored)
	})
}

func TestUUIDValidate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
