package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the command. It may be read from a TOML file:
//
//    trace  = "Info"
//    sorted = true
//    rules  = false
//    timing = true
//    digest = false
//    prompt = "nff> "
//
type Config struct {
	Trace  string `toml:"trace"`
	Sorted bool   `toml:"sorted"`
	Rules  bool   `toml:"rules"`
	Timing bool   `toml:"timing"`
	Digest bool   `toml:"digest"`
	Prompt string `toml:"prompt"`
}

func defaultConfig() Config {
	return Config{
		Trace:  "Error",
		Prompt: "nff> ",
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the file
// keep their default values; unknown settings are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown settings in configuration %s: %s", path,
			strings.Join(keys, ", "))
	}
	return cfg, nil
}
