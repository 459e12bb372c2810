package commands_test

import (
	"testing"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryCommand_ValidInput(t *testing.T) {
	resourceID := kernel.NewUUID()
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleReceiver}

	cmd, err := commands.NewConfirmDeliveryCommand(resourceID, caller)
	require.NoError(t, err)
	assert.Equal(t, resourceID, cmd.ResourceID())
	assert.Equal(t, caller, cmd.Caller())
}

func TestNewConfirmDeliveryCommand_InvalidCallerID(t *testing.T) {
	caller := ports.Identity{UserID: kernel.UUID{}, Role: user.RoleReceiver}
	_, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), caller)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestConfirmDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ConfirmDeliveryCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmDeliveryCommandIsNotConstructed)
}
