package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	path := writeFile(t, "nff.toml", "sorted = true\ntrace = \"Info\"\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, cfg.Sorted)
	assert.Equal(t, "Info", cfg.Trace)
	assert.Equal(t, "nff> ", cfg.Prompt, "prompt should keep its default")
	assert.False(t, cfg.Timing)
}

func TestConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	_, err := loadConfig(writeFile(t, "nff.toml", "sorted = true\ncolour = \"red\"\n"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "colour")
	}
	_, err = loadConfig(writeFile(t, "nff.toml", "sorted = \n"))
	assert.Error(t, err)
	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
