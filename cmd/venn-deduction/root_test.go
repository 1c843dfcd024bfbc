package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/venn-deduction/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"VENN_SEED", "VENN_SAMPLING", "VENN_LOG_LEVEL", "VENN_AUDIO"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommand_FlagsOverrideFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "venn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle:\n  seed: 5\n  sampling: legacy\naudio:\n  enabled: true\n"), 0644))

	out, err := execute(t, "config", "--config", path, "--seed", "11", "--no-slots", "--no-audio")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, int64(11), cfg.Puzzle.Seed)
	assert.Equal(t, "legacy", cfg.Puzzle.Sampling)
	assert.False(t, cfg.Puzzle.AnswerSlots)
	assert.False(t, cfg.Audio.Enabled)
}

func TestConfigCommand_UnsetFlagsKeepFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "venn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzle:\n  answer_slots: false\n"), 0644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.False(t, cfg.Puzzle.AnswerSlots)
	assert.True(t, cfg.Audio.Enabled)
}

func TestConfigCommand_Write(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "out", "venn.yaml")

	_, err := execute(t, "config", "--write", target, "--seed", "3")
	require.NoError(t, err)

	cfg, err := config.Load(target)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Puzzle.Seed)
}

func TestConfigCommand_InvalidFlag(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "--sampling", "skewed")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "config", "--color", "16")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestPuzzleCommand_Reproducible(t *testing.T) {
	isolate(t)

	first, err := execute(t, "puzzle", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "puzzle", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "seed     42")
	assert.Contains(t, first, "left slot")

	other, err := execute(t, "puzzle", "--seed", "43")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestPuzzleCommand_NoSlots(t *testing.T) {
	isolate(t)

	out, err := execute(t, "puzzle", "--seed", "42", "--no-slots")
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "slot"))
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(9), resolveSeed(9))
	assert.NotZero(t, resolveSeed(0))
}
