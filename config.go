// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a file representation of merger table extensions.
//
// Example:
//
//	prefix: tw-
//	groups:
//	  - id: btn-size
//	    patterns: ["btn-{sm|md|lg}"]
//	conflicts:
//	  btn-size: [p]
type Config struct {
	// Conflicts adds group-to-group conflicts.
	Conflicts map[string][]string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	// Prefix is a utility class prefix.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Separator splits variant modifiers from the class.
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// Groups extend the default table.
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Options converts config into merger options.
func (c Config) Options() MergerOptions {
	return MergerOptions{
		Prefix:    c.Prefix,
		Separator: c.Separator,
		Groups:    c.Groups,
		Conflicts: c.Conflicts,
	}
}

// ParseConfig parses YAML (or JSON) config from reader.
//
// Unknown fields are rejected. Empty input yields zero config.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// ParseConfigString parses config from string input.
func ParseConfigString(src string) (Config, error) {
	return ParseConfig(strings.NewReader(src))
}

// LoadConfigFile reads and parses config from a file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFiles reads and merges configs from files in the given order.
func LoadConfigFiles(paths ...string) (Config, error) {
	configs := make([]Config, 0, len(paths))
	for _, path := range paths {
		cfg, err := LoadConfigFile(path)
		if err != nil {
			return Config{}, err
		}

		configs = append(configs, cfg)
	}

	return MergeConfigs(configs...), nil
}

// NewMergerFromFiles loads configs and compiles merger from them.
func NewMergerFromFiles(paths ...string) (*Merger, error) {
	cfg, err := LoadConfigFiles(paths...)
	if err != nil {
		return nil, err
	}

	m, err := NewMerger(cfg.Options())
	if err != nil {
		return nil, fmt.Errorf("compile config: %w", err)
	}

	return m, nil
}
