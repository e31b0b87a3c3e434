// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Deployment names one program id and its fee recipient, the two facts a
// client needs to address a deployed instance of the protocol.
type Deployment struct {
	ProgramID    string `yaml:"program_id"`
	FeeRecipient string `yaml:"fee_recipient"`
}

// Config is timelockctl's local simulator configuration: every deployment
// this client knows about, which one this invocation targets, and where to
// keep the account/ledger files between invocations. Real deployments do
// not carry a config file of this shape, it exists only because this
// process restarts on every command.
type Config struct {
	ConfigKey   string                `yaml:"config_key"`
	DataDir     string                `yaml:"data_dir"`
	Deployments map[string]Deployment `yaml:"deployments"`
}

// DefaultConfigPath returns the conventional location for timelockctl's
// config file under the user's home directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timelockctl.yaml"
	}
	return filepath.Join(home, ".timelockctl.yaml")
}

// LoadConfig reads and parses the YAML config at path. If the file does not
// exist, it returns a fresh Config seeded with a single "default" deployment
// so that `timelockctl init` has something deterministic to work with on
// first run.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(path), nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "timelockctl: read config %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "timelockctl: parse config %q", path)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir(path)
	}
	if cfg.ConfigKey == "" {
		cfg.ConfigKey = "default"
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories as needed.
func (cfg Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "timelockctl: create config directory for %q", path)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "timelockctl: marshal config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "timelockctl: write config %q", path)
}

func defaultConfig(configPath string) Config {
	return Config{
		ConfigKey: "default",
		DataDir:   defaultDataDir(configPath),
		Deployments: map[string]Deployment{
			"default": {
				ProgramID:    "11111111111111111111111111111111",
				FeeRecipient: "11111111111111111111111111111112",
			},
		},
	}
}

func defaultDataDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "timelockctl-data")
}
