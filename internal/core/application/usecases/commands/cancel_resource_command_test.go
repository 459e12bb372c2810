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

func TestNewCancelResourceCommand_ValidInput(t *testing.T) {
	resourceID := kernel.NewUUID()
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}

	cmd, err := commands.NewCancelResourceCommand(resourceID, caller)
	require.NoError(t, err)
	assert.Equal(t, resourceID, cmd.ResourceID())
	assert.Equal(t, caller, cmd.Caller())
}

func TestNewCancelResourceCommand_InvalidResourceID(t *testing.T) {
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	_, err := commands.NewCancelResourceCommand(kernel.UUID{}, caller)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelResourceCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelResourceCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelResourceCommandIsNotConstructed)
}
