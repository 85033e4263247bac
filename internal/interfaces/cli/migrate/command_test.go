package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "create"}, names)

	tool := cmd.PersistentFlags().Lookup("tool")
	require.NotNil(t, tool)
	assert.Equal(t, "goose", tool.DefValue)
}

func TestCreateCommand_RequiresName(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"create"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}
