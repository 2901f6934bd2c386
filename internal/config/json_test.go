package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {
			"login_delay": "250ms",
			"disable_login_delay": false,
			"initial_fragment": "#/register",
			"version": "0.9.0"
		},
		"storage": {
			"backend": "file",
			"file": {"path": "/tmp/accounts.json"},
			"db": {"dsn": "/tmp/accounts.db"}
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.App.LoginDelay)
	assert.False(t, cfg.App.DisableLoginDelay)
	assert.Equal(t, "#/register", cfg.App.InitialFragment)
	assert.Equal(t, "0.9.0", cfg.App.Version)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/accounts.json", cfg.Storage.File.Path)
	assert.Equal(t, "/tmp/accounts.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath, "json source must not point at itself")
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempConfig(t, `{"app": `)
	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"1h"`, expected: time.Hour},
		{name: "millis string", input: `"300ms"`, expected: 300 * time.Millisecond},
		{name: "raw nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "garbage string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
