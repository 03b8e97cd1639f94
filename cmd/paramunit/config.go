// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory if no
// config-flag is given.
const DefaultConfigFile = ".paramunit.yaml"

// Config controls a test run of the paramunit command.  Zero values
// are usable defaults.
type Config struct {

	// Packages are the package-patterns handed to "go test"
	// defaulting to "./...".
	Packages []string `yaml:"packages"`

	// Args are additional "go test" arguments, e.g. "-count=1".
	Args []string `yaml:"args"`

	// Race turns the race detector on.
	Race bool `yaml:"race"`

	// Verbose reports each test instead of a summary only.
	Verbose bool `yaml:"verbose"`

	// NoColor suppresses styled output.
	NoColor bool `yaml:"no-color"`
}

// loadConfig unmarshals given yaml file into a Config.  A missing
// default config file is not an error; a missing explicitly requested
// file is.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	bb, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("paramunit: config: %w", err)
	}
	if err := yaml.Unmarshal(bb, cfg); err != nil {
		return nil, fmt.Errorf("paramunit: config: %s: %w", path, err)
	}
	return cfg, nil
}

// goTestArgs returns the "go test" command-line arguments for the
// receiving configuration.
func (c *Config) goTestArgs() []string {
	aa := []string{"test", "-json"}
	if c.Race {
		aa = append(aa, "-race")
	}
	aa = append(aa, c.Args...)
	if len(c.Packages) == 0 {
		return append(aa, "./...")
	}
	return append(aa, c.Packages...)
}
