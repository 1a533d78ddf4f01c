package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nsjourney/cmd/nsjourney/handlers"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "nsjourney", cmd.Use)
	assert.Equal(t, "Plan a campus journey and keep it as a local draft", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"plan",
		"status",
		"reset",
		"export",
		"forecast",
		"config",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), len(expectedSubcommands))
}

func TestRoot_PersistentFlags(t *testing.T) {
	cmd := Root()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"config", ""},
		{"store-backend", ""},
		{"store-path", ""},
		{"verbose", "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag, "%s flag should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRoot_ExportWithoutDraft(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NSJOURNEY_STORE_BACKEND", "")
	t.Setenv("NSJOURNEY_STORE_KEY", "")

	root := Root()
	root.SetArgs([]string{"--store-backend", "memory", "export"})

	err := root.Execute()
	assert.ErrorIs(t, err, handlers.ErrNoDraft)
}

func TestRoot_InvalidBackend(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := Root()
	root.SetArgs([]string{"--store-backend", "redis", "status"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
