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

// Package version turns the build version Kodi reports into the effective
// major version that picks an adapter.
//
// Kodi bumps the minor version of a development cycle to 90 and above to
// mark pre-releases of the next major ("19.90" is a Nexus alpha), so the
// literal major is not enough to tell which scripting API is running.
package version

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBuildVersion is used when Kodi reports no usable build version. It
// is the oldest release the adapters support.
const DefaultBuildVersion = "18.0"

// ModernMajor is the first effective major with structured info tags.
const ModernMajor = 20

// Info is a parsed major.minor.build triple, ordered lexicographically.
type Info struct {
	Major int
	Minor int
	Build int
}

// Compare returns -1, 0 or 1 as v sorts before, equal to or after o.
func (v Info) Compare(o Info) int {
	for _, d := range [...]int{v.Major - o.Major, v.Minor - o.Minor, v.Build - o.Build} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Less reports whether v sorts before o.
func (v Info) Less(o Info) bool {
	return v.Compare(o) < 0
}

func (v Info) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// Parse reads a System.BuildVersion label such as
// "20.2 (20.2.0) Git:20230629-5f418d0b13". Only the first word counts. Each
// of up to three dotted components is cut at its first "-" and missing
// components are 0. An empty or unreadable label parses as
// DefaultBuildVersion.
func Parse(raw string) Info {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return mustParse(DefaultBuildVersion)
	}

	info, err := parseToken(fields[0])
	if err != nil {
		log.Debug().Err(err).Str("label", raw).Msg("unreadable build version, using default")
		return mustParse(DefaultBuildVersion)
	}
	return info
}

func parseToken(token string) (Info, error) {
	var nums [3]int
	for i, part := range strings.SplitN(token, ".", 3) {
		part, _, _ = strings.Cut(part, "-")
		n, err := strconv.Atoi(leadingDigits(part))
		if err != nil {
			return Info{}, fmt.Errorf("component %d of %q: %w", i, token, err)
		}
		nums[i] = n
	}
	return Info{Major: nums[0], Minor: nums[1], Build: nums[2]}, nil
}

// leadingDigits keeps "0" of a trailing component like "0.5" or "1~rc".
func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}

func mustParse(s string) Info {
	info, err := parseToken(s)
	if err != nil {
		panic(err)
	}
	return info
}

var (
	lastLegacyOnly  = Info{Major: 18, Minor: 9, Build: 701}
	firstNexusAlpha = Info{Major: 19, Minor: 90}
)

// Effective normalizes pre-release minors into the major they lead up to:
// everything from 18.9.701 up to 19.90 is 19, and from there on a minor of
// 90 or more counts as the next major.
func Effective(v Info) int {
	switch {
	case v.Less(lastLegacyOnly):
		return v.Major
	case v.Less(firstNexusAlpha):
		return 19
	case v.Minor >= 90:
		return v.Major + 1
	default:
		return v.Major
	}
}

// Resolved is a parsed build version with its effective major.
type Resolved struct {
	Raw   string
	Info  Info
	Major int
}

// New resolves a raw build version label.
func New(raw string) Resolved {
	info := Parse(raw)
	return Resolved{Raw: raw, Info: info, Major: Effective(info)}
}

func (r Resolved) K18() bool { return r.Major == 18 }
func (r Resolved) K19() bool { return r.Major == 19 }
func (r Resolved) K20() bool { return r.Major == 20 }
func (r Resolved) K21() bool { return r.Major == 21 }

// UseLegacyAdapter reports whether the host speaks the flat info label API,
// which the modern surface must then be built on.
func (r Resolved) UseLegacyAdapter() bool {
	return r.Major < ModernMajor
}

func (r Resolved) String() string {
	return fmt.Sprintf("%s (effective %d)", r.Info, r.Major)
}

// Source reports the raw build version of a running host.
type Source interface {
	BuildVersion(ctx context.Context) (string, error)
}

// StaticSource is a fixed build version label.
type StaticSource string

func (s StaticSource) BuildVersion(context.Context) (string, error) {
	return string(s), nil
}

// Resolve queries src once. A failed query is not fatal: the version falls
// back to DefaultBuildVersion.
func Resolve(ctx context.Context, src Source) Resolved {
	raw, err := src.BuildVersion(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to query build version, using default")
		raw = ""
	}
	r := New(raw)
	log.Debug().
		Str("label", raw).
		Str("version", r.Info.String()).
		Int("effective", r.Major).
		Msg("resolved host version")
	return r
}
