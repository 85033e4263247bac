package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  gin.ReleaseMode,
		"prod":        gin.ReleaseMode,
		"test":        gin.TestMode,
		"development": gin.DebugMode,
		"":            gin.DebugMode,
		"staging":     gin.DebugMode,
	}
	for in, want := range tests {
		assert.Equal(t, want, mapEnvToGinMode(in), in)
	}
}

func TestNewCommand_Flags(t *testing.T) {
	cmd := NewCommand()
	assert.Equal(t, "server", cmd.Use)
	for _, name := range []string{"env", "auto-migrate", "migration-tool", "skip-migration-check"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "goose", cmd.Flags().Lookup("migration-tool").DefValue)
}
