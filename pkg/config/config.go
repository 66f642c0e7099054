// kover
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of kover.
//
// kover is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kover is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kover.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/kover/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "KOVER_CFG"
)

type Values struct {
	Kodi         Kodi    `toml:"kodi"`
	Adapter      Adapter `toml:"adapter,omitempty"`
	ConfigSchema int     `toml:"config_schema"`
	DebugLogging bool    `toml:"debug_logging"`
}

type Kodi struct {
	URL      string `toml:"url" validate:"omitempty,http_url"`
	Username string `toml:"username,omitempty"`
	Password string `toml:"password,omitempty" validate:"excluded_without=Username"`
	// BuildVersion skips the live query when set.
	BuildVersion string `toml:"build_version,omitempty"`
}

type Adapter struct {
	// Sync pushes every legacy tag write through to the host item.
	Sync *bool `toml:"sync,omitempty"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Kodi: Kodi{
		URL: "http://localhost:8080/jsonrpc",
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) KodiURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Kodi.URL
}

// SetKodiURL validates and stores the JSON-RPC endpoint.
func (c *Instance) SetKodiURL(url string) error {
	if err := validate.Var(url, "omitempty,http_url"); err != nil {
		return fmt.Errorf("invalid kodi url %q: %w", url, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Kodi.URL = url
	return nil
}

// KodiCredentials returns the web server basic auth pair. An empty username
// means no auth.
func (c *Instance) KodiCredentials() (username, password string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Kodi.Username, c.vals.Kodi.Password
}

// BuildVersion returns the configured build version override, or "".
func (c *Instance) BuildVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Kodi.BuildVersion
}

func (c *Instance) SetBuildVersion(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Kodi.BuildVersion = label
}

// AdapterSync reports whether legacy tag writes sync to the host. Defaults
// to true.
func (c *Instance) AdapterSync() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Adapter.Sync == nil {
		return true
	}
	return *c.vals.Adapter.Sync
}

func (c *Instance) SetAdapterSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Adapter.Sync = &enabled
}
