package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/unitime/pkg/model"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Nil(t, err)
	assert.Equal(t, "5001", config.Server.Port)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, model.DefaultDays(), config.Days())
	assert.Equal(t, model.DefaultWeeklyCapMinutes, config.WeeklyCapMinutes())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "8080"
  mode: release
logging:
  level: debug
  pretty: true
scheduling:
  days: [Monday, Wednesday, Saturday]
  weekly_cap_hours: 20
`
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, "8080", config.Server.Port)
	assert.True(t, config.Logging.Pretty)
	assert.Equal(t, []model.Day{model.Monday, model.Wednesday, model.Saturday}, config.Days())
	assert.Equal(t, 1200, config.WeeklyCapMinutes())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UNITIME_PORT", "9000")
	t.Setenv("UNITIME_LOG_LEVEL", "warn")

	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Nil(t, err)
	assert.Equal(t, "9000", config.Server.Port)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	assert.Nil(t, os.WriteFile(path, []byte("scheduling:\n  days: [Funday]\n"), 0o644))
	_, err := Load(path)
	assert.NotNil(t, err)

	assert.Nil(t, os.WriteFile(path, []byte("scheduling:\n  weekly_cap_hours: -3\n"), 0o644))
	_, err = Load(path)
	assert.NotNil(t, err)
}
