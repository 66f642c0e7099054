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

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/kover/pkg/config"
	"github.com/ZaparooProject/kover/pkg/helpers"
	"github.com/ZaparooProject/kover/pkg/kover"
	"github.com/ZaparooProject/kover/pkg/kover/legacy"
	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/ZaparooProject/kover/pkg/xbmc/memhost"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	Version *bool
	Resolve *bool
	Build   *string
	Labels  *string
	Type    *string
}

// SetupFlags defines all CLI flags.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		Resolve: flag.Bool(
			"resolve",
			false,
			"query Kodi and print its version and the adapter it needs",
		),
		Build: flag.String(
			"build",
			"",
			"use this build version instead of querying Kodi",
		),
		Labels: flag.String(
			"labels",
			"",
			"apply an info label file (json, toml, yaml or ini) and print the resulting tag",
		),
		Type: flag.String(
			"type",
			"video",
			"media type of the label file: video, music, pictures or game",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre() {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("kover v%s\n", config.AppVersion)
		os.Exit(0)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, _ = fmt.Println(string(data))
	return nil
}

func fail(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	_, _ = fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
	os.Exit(1)
}

// Post actions all remaining flags that require the environment to be set
// up. Logging is allowed.
func (f *Flags) Post(cfg *config.Instance) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	override := *f.Build
	if override == "" {
		override = cfg.BuildVersion()
	}
	client := kodi.NewClient(cfg)

	switch {
	case *f.Resolve:
		report, err := ResolveReport(ctx, client, override)
		if err != nil {
			fail("resolving version", err)
		}
		if err := printJSON(report); err != nil {
			fail("printing report", err)
		}
		os.Exit(0)
	case isFlagPassed("labels"):
		if *f.Labels == "" {
			_, _ = fmt.Fprint(os.Stderr, "Error: labels flag requires a value\n")
			os.Exit(1)
		}

		labels, err := LoadLabels(afero.NewOsFs(), *f.Labels)
		if err != nil {
			fail("loading labels", err)
		}

		var src version.Source = client
		if override != "" {
			src = version.StaticSource(override)
		}
		factory, err := kover.Activate(ctx, src, kover.Hosts{
			Legacy: memhost.NewLegacyHost,
			Modern: memhost.NewModernHost,
		}, kover.WithLegacyOptions(legacy.WithSync(cfg.AdapterSync())))
		if err != nil {
			fail("activating adapter", err)
		}

		snap, applyErr := Apply(factory, *f.Type, labels)
		if err := printJSON(snap); err != nil {
			fail("printing snapshot", err)
		}
		if applyErr != nil {
			fail("applying labels", applyErr)
		}
		os.Exit(0)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// Setup initializes logging and the user config. Returns a user config
// object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) *config.Instance {
	err := helpers.InitLogging(helpers.LogDir(), writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	return cfg
}
