// Copyright 2025 The odata2openapi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides functionality for working with the
// odata2openapi.toml configuration file.
package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// fileName is the project configuration file, read from the working
// directory when present.
const fileName = "odata2openapi.toml"

// Config carries everything needed to run a conversion. Values come from
// three layers: the project configuration file, the environment, and the
// command line. Later layers win.
type Config struct {
	General GeneralConfig `toml:"general"`

	// Settings holds conversion settings as `key = 'value'` pairs under
	// the `[settings]` table, using the same keys accepted by `-set` on
	// the command line.
	Settings map[string]string `toml:"settings,omitempty"`
}

// GeneralConfig selects the input document, the output destination, and
// the serialization format.
type GeneralConfig struct {
	Metadata string `toml:"metadata,omitempty"`
	Output   string `toml:"output,omitempty"`
	Format   string `toml:"format,omitempty"`
}

// environment mirrors the configuration values that may be set through
// environment variables.
type environment struct {
	Metadata    string `env:"ODATA2OPENAPI_METADATA"`
	Output      string `env:"ODATA2OPENAPI_OUTPUT"`
	Format      string `env:"ODATA2OPENAPI_FORMAT"`
	ServiceRoot string `env:"ODATA2OPENAPI_SERVICE_ROOT"`
}

// Load reads odata2openapi.toml from the working directory, overlays the
// environment, and finally the values passed on the command line. Returns
// the merged configuration, or an error if any layer is invalid.
func Load(metadata, output, format string, settings map[string]string) (*Config, error) {
	args := &Config{
		General: GeneralConfig{
			Metadata: metadata,
			Output:   output,
			Format:   format,
		},
		Settings: maps.Clone(settings),
	}
	return load(fileName, args)
}

func load(filename string, args *Config) (*Config, error) {
	fileConfig, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	envConfig, err := fromEnvironment()
	if err != nil {
		return nil, err
	}
	return merge(merge(fileConfig, envConfig), args), nil
}

// LoadFile reads a configuration file. A missing file yields the empty
// configuration, a file that exists but cannot be parsed is an error.
func LoadFile(filename string) (*Config, error) {
	config := &Config{
		Settings: map[string]string{},
	}
	if contents, err := os.ReadFile(filename); err == nil {
		if err := toml.Unmarshal(contents, config); err != nil {
			return nil, fmt.Errorf("error reading configuration %s: %w", filename, err)
		}
	}
	// Ignore errors reading the file, the configuration file is optional.
	return config, nil
}

func fromEnvironment() (*Config, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("error reading environment configuration: %w", err)
	}
	config := &Config{
		General: GeneralConfig{
			Metadata: e.Metadata,
			Output:   e.Output,
			Format:   e.Format,
		},
		Settings: map[string]string{},
	}
	if e.ServiceRoot != "" {
		config.Settings["service-root"] = e.ServiceRoot
	}
	return config, nil
}

func merge(base, overlay *Config) *Config {
	merged := &Config{
		General:  base.General,
		Settings: map[string]string{},
	}
	for k, v := range base.Settings {
		merged.Settings[k] = v
	}
	if overlay.General.Metadata != "" {
		merged.General.Metadata = overlay.General.Metadata
	}
	if overlay.General.Output != "" {
		merged.General.Output = overlay.General.Output
	}
	if overlay.General.Format != "" {
		merged.General.Format = overlay.General.Format
	}
	for k, v := range overlay.Settings {
		merged.Settings[k] = v
	}
	return merged
}
