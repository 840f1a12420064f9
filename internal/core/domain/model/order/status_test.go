package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []order.Status{order.Initiated, order.Sent, order.Delivered} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range status fails validation", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "initiated", order.Initiated.String())
	assert.Equal(t, "sent", order.Sent.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Initiated, order.Sent, order.Delivered} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("cancelled")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the unknown string itself", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("initiated advances to sent", func(t *testing.T) {
		next, err := order.Initiated.Next()

		require.NoError(t, err)
		assert.Equal(t, order.Sent, next)
	})

	t.Run("sent advances to delivered", func(t *testing.T) {
		next, err := order.Sent.Next()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		_, err := order.Delivered.Next()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("unknown cannot advance", func(t *testing.T) {
		_, err := order.Unknown.Next()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestStatus_CanAdvance(t *testing.T) {
	assert.True(t, order.Initiated.CanAdvance())
	assert.True(t, order.Sent.CanAdvance())
	assert.False(t, order.Delivered.CanAdvance())
	assert.False(t, order.Unknown.CanAdvance())
}

func TestStatus_Predicates(t *testing.T) {
	t.Run("stage predicates", func(t *testing.T) {
		assert.True(t, order.Initiated.IsInitiated())
		assert.False(t, order.Initiated.IsSent())
		assert.True(t, order.Sent.IsSent())
		assert.False(t, order.Sent.IsDelivered())
		assert.True(t, order.Delivered.IsDelivered())
	})

	t.Run("every status except delivered is active", func(t *testing.T) {
		assert.True(t, order.Initiated.IsActive())
		assert.True(t, order.Sent.IsActive())
		assert.False(t, order.Delivered.IsActive())
	})
}
