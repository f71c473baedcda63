package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	weights := make([]int, 0, len(cfg.Symbols()))
	for _, s := range cfg.Symbols() {
		weights = append(weights, s.Weight)
	}
	assert.Equal(t, []int{100, 80, 120, 60, 90, 110, 70, 85, 150, 200}, weights)
	assert.Equal(t, 10, cfg.MinBet())
	assert.Equal(t, 500, cfg.MaxBet())
	assert.Equal(t, 3, cfg.JackpotMultiplier())
	assert.Equal(t, 1.5, cfg.DoubleMultiplier())
	assert.Equal(t, 1000, cfg.StartingBalance())
	assert.Equal(t, 1, cfg.StudyPointsPerMinute())
	assert.Equal(t, 720, cfg.StudyMaxSessionMinutes())
}

func TestParseGameConfig_Overrides(t *testing.T) {
	data := []byte(`
casino:
  min_bet: 20
  symbols:
    - label: A
      weight: 5
    - label: B
      weight: 7
study:
  points_per_minute: 2
  max_session_minutes: 240
`)
	cfg, err := parseGameConfig(data)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.MinBet())
	assert.Equal(t, 500, cfg.MaxBet())
	require.Len(t, cfg.Symbols(), 2)
	assert.Equal(t, "B", cfg.Symbols()[1].Label)
	assert.Equal(t, 2, cfg.StudyPointsPerMinute())
	assert.Equal(t, 240, cfg.StudyMaxSessionMinutes())
}

func TestParseGameConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"min over max":    "casino:\n  min_bet: 600\n",
		"zero weight":     "casino:\n  symbols:\n    - label: A\n      weight: 0\n",
		"broken yaml":     "casino: [",
		"negative reward": "study:\n  points_per_minute: -1\n",
		"negative length": "study:\n  max_session_minutes: -5\n",
		"reward overflow": "study:\n  points_per_minute: 3000000\n  max_session_minutes: 1440\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseGameConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestNewGameConfigFromYAML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("casino:\n  max_bet: 250\n"), 0o600))

	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxBet())

	_, err = NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "8080")
	t.Setenv(corsOriginsEnvName, "http://a.test, http://b.test")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestNewJanitorConfig(t *testing.T) {
	t.Setenv(janitorIntervalEnvName, "")
	cfg, err := NewJanitorConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultJanitorInterval, cfg.Interval())

	t.Setenv(janitorIntervalEnvName, "-1m")
	_, err = NewJanitorConfig()
	assert.Error(t, err)
}
