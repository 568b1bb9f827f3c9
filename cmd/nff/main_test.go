package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	opts, err := parseArgs([]string{"-s", "--digest", "g.txt"})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "g.txt", opts.file)
	assert.True(t, opts.cfg.Sorted)
	assert.True(t, opts.cfg.Digest)
	assert.False(t, opts.cfg.Rules)
	assert.Equal(t, "Error", opts.cfg.Trace)
	//
	for _, args := range [][]string{{}, {"a.txt", "b.txt"}, {"--no-such-flag", "a.txt"}} {
		_, err := parseArgs(args)
		assert.True(t, errors.Is(err, errUsage), "expected usage error for %v, got %v", args, err)
	}
	opts, err = parseArgs([]string{"-i"})
	if assert.NoError(t, err) {
		assert.True(t, opts.interactive)
		assert.Equal(t, "", opts.file)
	}
}

func TestParseArgsConfigOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	path := writeFile(t, "nff.toml", "sorted = true\nrules = true\ntrace = \"Info\"\n")
	opts, err := parseArgs([]string{"--config", path, "--sorted=false", "g.txt"})
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, opts.cfg.Sorted, "flag should override configuration")
	assert.True(t, opts.cfg.Rules, "configuration should be kept where no flag is given")
	assert.Equal(t, "Info", opts.cfg.Trace)
}

func TestRunExitCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	good := writeFile(t, "good.txt", "S -> A b\nA -> a\nA -> 0\n")
	bad := writeFile(t, "bad.txt", "S -> A b\nA a\n")
	assert.Equal(t, exitOK, run([]string{"--rules", "--digest", "--timing", good}))
	assert.Equal(t, exitGrammar, run([]string{bad}))
	assert.Equal(t, exitRead, run([]string{filepath.Join(t.TempDir(), "missing.txt")}))
	assert.Equal(t, exitUsage, run([]string{}))
}

func TestRunConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nff.cli")
	defer teardown()
	//
	good := writeFile(t, "good.txt", "S -> a\n")
	unknown := writeFile(t, "nff.toml", "colour = \"red\"\n")
	missing := filepath.Join(t.TempDir(), "missing.toml")
	assert.Equal(t, exitRead, run([]string{"--config", unknown, good}))
	assert.Equal(t, exitRead, run([]string{"--config", missing, good}))
}
