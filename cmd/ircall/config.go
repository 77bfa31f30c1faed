package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds ircall.toml defaults. Flags take precedence over the
// config file.
type Config struct {
	ABI  string `toml:"abi"`  // path to metadata JSON
	Wasm string `toml:"wasm"` // path to contract wasm binary
	Out  string `toml:"out"`  // "hex" or "raw"
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge fills empty flag values from the config file.
func (c *Config) merge(abiPath, wasmPath, out *string) {
	if *abiPath == "" {
		*abiPath = c.ABI
	}
	if *wasmPath == "" {
		*wasmPath = c.Wasm
	}
	if *out == "" {
		*out = c.Out
	}
}
