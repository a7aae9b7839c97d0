package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		debug         string
		keepAlive     string
		wantDebug     bool
		wantKeepAlive bool
	}{
		{
			name:          "defaults",
			wantDebug:     false,
			wantKeepAlive: true,
		},
		{
			name:          "debug enabled with 1",
			debug:         "1",
			wantDebug:     true,
			wantKeepAlive: true,
		},
		{
			name:          "keepalive disabled",
			debug:         "TRUE",
			keepAlive:     "false",
			wantDebug:     true,
			wantKeepAlive: false,
		},
		{
			name:          "garbage falls back to defaults",
			debug:         "maybe",
			keepAlive:     "sometimes",
			wantDebug:     false,
			wantKeepAlive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEMO_DEBUG", tt.debug)
			t.Setenv("DEMO_KEEPALIVE", tt.keepAlive)

			conf := Load(filepath.Join(t.TempDir(), "missing.env"))

			assert.Equal(t, tt.wantDebug, conf.Debug)
			assert.Equal(t, tt.wantKeepAlive, conf.KeepAlive)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv does not override variables that are already set
	t.Setenv("DEMO_DEBUG", "")
	require.NoError(t, os.Unsetenv("DEMO_DEBUG"))
	t.Setenv("DEMO_KEEPALIVE", "")
	require.NoError(t, os.Unsetenv("DEMO_KEEPALIVE"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DEMO_KEEPALIVE=false\n"), 0o600))

	conf := Load(envFile)

	assert.False(t, conf.Debug)
	assert.False(t, conf.KeepAlive)
}
