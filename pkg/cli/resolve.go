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
	"fmt"

	"github.com/ZaparooProject/kover/pkg/kover"
	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Report is what -resolve prints.
type Report struct {
	BuildVersion string `json:"build_version"`
	Version      string `json:"version"`
	Adapter      string `json:"adapter"`
	Application  string `json:"application,omitempty"`
	APIVersion   string `json:"api_version,omitempty"`
	Effective    int    `json:"effective"`
	Override     bool   `json:"override,omitempty"`
}

func newReport(r version.Resolved) Report {
	adapter := kover.PatchedModern
	if r.UseLegacyAdapter() {
		adapter = kover.PatchedLegacy
	}
	return Report{
		BuildVersion: r.Raw,
		Version:      r.Info.String(),
		Effective:    r.Major,
		Adapter:      adapter.String(),
	}
}

// ResolveReport works out which adapter a host needs. A non-empty override
// is used as the build version without contacting Kodi. Otherwise the build
// version is required while the application and JSON-RPC API versions are
// informational and left out when the query fails.
func ResolveReport(ctx context.Context, client kodi.KodiClient, override string) (Report, error) {
	if override != "" {
		report := newReport(version.New(override))
		report.Override = true
		return report, nil
	}

	var (
		build  string
		app    kodi.AppVersion
		apiVer kodi.JSONRPCVersion
		appOK  bool
		apiOK  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		build, err = client.BuildVersion(gctx)
		if err != nil {
			return fmt.Errorf("failed to query build version: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		app, err = client.ApplicationVersion(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to query application version")
			return nil
		}
		appOK = true
		return nil
	})
	g.Go(func() error {
		var err error
		apiVer, err = client.APIVersion(gctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to query json-rpc version")
			return nil
		}
		apiOK = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := newReport(version.New(build))
	if appOK {
		report.Application = app.String()
	}
	if apiOK {
		report.APIVersion = fmt.Sprintf("%d.%d.%d", apiVer.Major, apiVer.Minor, apiVer.Patch)
	}
	return report, nil
}
