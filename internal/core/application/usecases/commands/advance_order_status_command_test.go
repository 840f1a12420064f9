package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderStatusCommand(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewAdvanceOrderStatusCommand_InvalidOrderID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := commands.NewAdvanceOrderStatusCommand(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}

func TestAdvanceOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.AdvanceOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
}
