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

// Package kover picks the list item adapter for the running Kodi and hands
// out the factory addon code creates list items with.
//
// Activation happens once per process. The first Activate call resolves the
// host version and installs either the legacy adapter (Kodi 19 and older,
// structured tags emulated over flat info labels) or the modern adapter
// (Kodi 20 and newer, flat info labels translated into structured tags).
// Later calls return the installed factory unchanged.
package kover

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/kover/pkg/helpers/syncutil"
	"github.com/ZaparooProject/kover/pkg/kover/legacy"
	"github.com/ZaparooProject/kover/pkg/kover/modern"
	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/rs/zerolog/log"
)

// ErrNoHost is returned when the host constructor for the selected adapter
// was not supplied.
var ErrNoHost = errors.New("no host list item constructor")

// State is the activation state of the process.
type State int

const (
	Unpatched State = iota
	PatchedLegacy
	PatchedModern
)

func (s State) String() string {
	switch s {
	case Unpatched:
		return "unpatched"
	case PatchedLegacy:
		return "legacy"
	case PatchedModern:
		return "modern"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Hosts are the native list item constructors of the two API shapes. Only
// the one matching the resolved version is called.
type Hosts struct {
	Legacy func(label, label2, path string) xbmc.LegacyItem
	Modern func(label, label2, path string) xbmc.ModernItem
}

// Factory creates list items through the installed adapter.
type Factory struct {
	version       version.Resolved
	newLegacyItem func(label, label2, path string) xbmc.LegacyItem
	newModernItem func(label, label2, path string) xbmc.ModernItem
	legacyOpts    []legacy.Option
}

// NewListItem creates a host item and wraps it in the adapter.
func (f *Factory) NewListItem(label, label2, path string) xbmc.ListItem {
	if f.newModernItem != nil {
		return modern.NewListItem(f.newModernItem(label, label2, path))
	}
	return legacy.NewListItem(f.newLegacyItem(label, label2, path), f.legacyOpts...)
}

// Version returns the host version the adapter was selected for.
func (f *Factory) Version() version.Resolved {
	return f.version
}

// Kind returns the installed adapter.
func (f *Factory) Kind() State {
	if f.newModernItem != nil {
		return PatchedModern
	}
	return PatchedLegacy
}

// Option configures the factory built by the first Activate call.
type Option func(*Factory)

// WithLegacyOptions passes options to every legacy list item.
func WithLegacyOptions(opts ...legacy.Option) Option {
	return func(f *Factory) {
		f.legacyOpts = append(f.legacyOpts, opts...)
	}
}

// NewFactory builds the factory for an already resolved version without
// installing it. Activate is the process-wide entry point; this is for
// tools that dry-run both adapters side by side.
func NewFactory(v version.Resolved, hosts Hosts, opts ...Option) (*Factory, error) {
	f := &Factory{version: v}
	for _, opt := range opts {
		opt(f)
	}

	if v.UseLegacyAdapter() {
		if hosts.Legacy == nil {
			return nil, fmt.Errorf("%w: legacy adapter selected for %s", ErrNoHost, v)
		}
		f.newLegacyItem = hosts.Legacy
	} else {
		if hosts.Modern == nil {
			return nil, fmt.Errorf("%w: modern adapter selected for %s", ErrNoHost, v)
		}
		f.newModernItem = hosts.Modern
	}
	return f, nil
}

var (
	mu        syncutil.Mutex
	installed *Factory
)

// Activate installs the adapter for the host src reports. Only the first
// successful call has any effect; the rest return the same factory, whatever
// arguments they pass.
func Activate(ctx context.Context, src version.Source, hosts Hosts, opts ...Option) (*Factory, error) {
	mu.Lock()
	defer mu.Unlock()

	if installed != nil {
		log.Debug().Stringer("adapter", installed.Kind()).Msg("adapter already installed")
		return installed, nil
	}

	v := version.Resolve(ctx, src)
	f, err := NewFactory(v, hosts, opts...)
	if err != nil {
		return nil, err
	}

	installed = f
	log.Info().
		Str("version", v.Info.String()).
		Int("effective", v.Major).
		Stringer("adapter", f.Kind()).
		Msg("installed list item adapter")
	return f, nil
}

// Installed returns the factory of the installed adapter, if any.
func Installed() (*Factory, bool) {
	mu.Lock()
	defer mu.Unlock()
	return installed, installed != nil
}

// CurrentState reports which adapter, if any, is installed.
func CurrentState() State {
	f, ok := Installed()
	if !ok {
		return Unpatched
	}
	return f.Kind()
}
