package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  path: /var/lib/airport/airport.db
limits:
  max_flights: 50
booking:
  refund_rate: 0.90
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/airport/airport.db", cfg.Storage.Path)
	assert.Equal(t, 50, cfg.Limits.MaxFlights)
	assert.Equal(t, 0.90, cfg.Booking.RefundRate)

	// Values absent from the file keep their defaults.
	assert.Equal(t, "events.log", cfg.Storage.JournalPath)
	assert.Equal(t, 500, cfg.Limits.MaxPassengers)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
