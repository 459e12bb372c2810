package commands_test

import (
	"testing"

	"resourceshare/internal/core/application/usecases/commands"
	"resourceshare/internal/core/domain/model/kernel"
	"resourceshare/internal/core/domain/model/resource"
	"resourceshare/internal/core/domain/model/user"
	"resourceshare/internal/core/ports"
	"resourceshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishResourceCommand_ValidInput(t *testing.T) {
	resourceID := kernel.NewUUID()
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	location := testLocation(t)

	cmd, err := commands.NewPublishResourceCommand(
		resourceID, caller, "Winter coat", "Warm, size M",
		resource.CategoryClothing, location, "Main St 5", "https://img.example.com/coat.jpg")
	require.NoError(t, err)
	assert.Equal(t, resourceID, cmd.ResourceID())
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, "Winter coat", cmd.Title())
	assert.Equal(t, "Warm, size M", cmd.Description())
	assert.Equal(t, resource.CategoryClothing, cmd.Category())
	sameLocation, err := location.IsEqual(cmd.Location())
	require.NoError(t, err)
	assert.True(t, sameLocation)
	assert.Equal(t, "Main St 5", cmd.Address())
	assert.Equal(t, "https://img.example.com/coat.jpg", cmd.ImageURL())
}

func TestNewPublishResourceCommand_InvalidResourceID(t *testing.T) {
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	_, err := commands.NewPublishResourceCommand(
		kernel.UUID{}, caller, "Winter coat", "Warm",
		resource.CategoryClothing, testLocation(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPublishResourceCommand_BlankTitle(t *testing.T) {
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	_, err := commands.NewPublishResourceCommand(
		kernel.NewUUID(), caller, "  ", "Warm",
		resource.CategoryClothing, testLocation(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPublishResourceCommand_UnknownCategory(t *testing.T) {
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleDonor}
	_, err := commands.NewPublishResourceCommand(
		kernel.NewUUID(), caller, "Winter coat", "Warm",
		resource.CategoryUnknown, testLocation(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPublishResourceCommand_InvalidCallerRole(t *testing.T) {
	caller := ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleUnknown}
	_, err := commands.NewPublishResourceCommand(
		kernel.NewUUID(), caller, "Winter coat", "Warm",
		resource.CategoryClothing, testLocation(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
