package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/venn-deduction/puzzle"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"VENN_SEED", "VENN_SAMPLING", "VENN_LOG_LEVEL", "VENN_AUDIO"} {
		t.Setenv(k, "")
	}
	// Keep godotenv away from any .env in the package directory
	chdir(t, t.TempDir())
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Venn Deduction", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.Resizable)
	assert.False(t, cfg.Window.Fullscreen)
	assert.Equal(t, 60, cfg.Window.TickRate)
	assert.True(t, cfg.Puzzle.AnswerSlots)
	assert.Equal(t, "uniform", cfg.Puzzle.Sampling)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Logging.Debug)
	require.NoError(t, cfg.Validate())
}

func TestDefaultOptionsMatchDefaultLayout(t *testing.T) {
	opts := DefaultConfig().PuzzleOptions()
	assert.Equal(t, puzzle.DefaultLayout(), opts.Layout)
	assert.Equal(t, puzzle.SampleUniform, opts.Sampling)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "venn.yaml")
	data := []byte("window:\n  tick_rate: 30\npuzzle:\n  seed: 42\n  sampling: legacy\n  answer_slots: false\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Window.TickRate)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, int64(42), cfg.Puzzle.Seed)
	assert.False(t, cfg.Puzzle.AnswerSlots)

	opts := cfg.PuzzleOptions()
	assert.Equal(t, puzzle.SampleLegacy, opts.Sampling)
	assert.False(t, opts.Layout.Slots)
	assert.Equal(t, 200.0, opts.Layout.RegionRadius)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()
	cfg.Puzzle.Seed = 7
	cfg.Logging.Debug = true

	path := filepath.Join(t.TempDir(), "nested", "venn.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all overrides apply", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VENN_SEED", "1234")
		t.Setenv("VENN_SAMPLING", "LEGACY")
		t.Setenv("VENN_LOG_LEVEL", "debug")
		t.Setenv("VENN_AUDIO", "false")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, int64(1234), cfg.Puzzle.Seed)
		assert.Equal(t, "legacy", cfg.Puzzle.Sampling)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.False(t, cfg.Audio.Enabled)
	})

	t.Run("bad seed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VENN_SEED", "not-a-number")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad audio flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VENN_AUDIO", "loud")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("dotenv file is read", func(t *testing.T) {
		clearEnv(t)
		require.NoError(t, os.Unsetenv("VENN_SEED"))
		require.NoError(t, os.WriteFile(".env", []byte("VENN_SEED=99\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("VENN_SEED") })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, int64(99), cfg.Puzzle.Seed)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Window.TickRate = 0 }},
		{"tick rate too high", func(c *Config) { c.Window.TickRate = 241 }},
		{"unknown color", func(c *Config) { c.Window.Color = "16" }},
		{"negative radius", func(c *Config) { c.Puzzle.Radius = -1 }},
		{"zero token radius", func(c *Config) { c.Puzzle.TokenRadius = 0 }},
		{"zero slot height", func(c *Config) { c.Puzzle.SlotHeight = 0 }},
		{"negative margin", func(c *Config) { c.Puzzle.Margin = -5 }},
		{"unknown sampling", func(c *Config) { c.Puzzle.Sampling = "skewed" }},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("first invalid size is reported consistently", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			cfg := DefaultConfig()
			cfg.Puzzle.RowHeight = 0
			cfg.Puzzle.TokenRadius = 0
			cfg.Puzzle.Radius = 0
			cfg.Puzzle.SlotWidth = 0
			cfg.Puzzle.SlotHeight = 0

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			require.Contains(t, err.Error(), "row_height")
		}
	})

	t.Run("tick rate bounds accepted", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Window.TickRate = 1
		assert.NoError(t, cfg.Validate())
		cfg.Window.TickRate = 240
		assert.NoError(t, cfg.Validate())
	})
}
