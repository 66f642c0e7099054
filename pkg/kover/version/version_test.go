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

package version_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaparooProject/kover/pkg/kover/version"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want version.Info
	}{
		{name: "full triple", raw: "18.9.701", want: version.Info{Major: 18, Minor: 9, Build: 701}},
		{name: "major minor", raw: "19.90", want: version.Info{Major: 19, Minor: 90}},
		{name: "major only", raw: "21", want: version.Info{Major: 21}},
		{
			name: "kodi label",
			raw:  "20.2 (20.2.0) Git:20230629-5f418d0b13",
			want: version.Info{Major: 20, Minor: 2},
		},
		{name: "suffix stripped", raw: "19.90.101-ALPHA1", want: version.Info{Major: 19, Minor: 90, Build: 101}},
		{name: "suffix on minor", raw: "21.0-BETA2 Git:abc", want: version.Info{Major: 21}},
		{name: "extra components", raw: "20.1.0.5", want: version.Info{Major: 20, Minor: 1}},
		{name: "empty uses default", raw: "", want: version.Info{Major: 18}},
		{name: "blank uses default", raw: "   ", want: version.Info{Major: 18}},
		{name: "garbage uses default", raw: "Nexus", want: version.Info{Major: 18}},
		{name: "trailing dot uses default", raw: "20.", want: version.Info{Major: 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, version.Parse(tt.raw))
		})
	}
}

func TestEffective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "17.6", want: 17},
		{raw: "18.0", want: 18},
		{raw: "18.9.700", want: 18},
		{raw: "18.9.701", want: 19},
		{raw: "19.0", want: 19},
		{raw: "19.89", want: 19},
		{raw: "19.90", want: 20},
		{raw: "20.1", want: 20},
		{raw: "20.90", want: 21},
		{raw: "21.1", want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, version.Effective(version.Parse(tt.raw)))
		})
	}
}

func TestResolvedFlags(t *testing.T) {
	t.Parallel()

	k19 := version.New("19.5")
	assert.True(t, k19.K19())
	assert.False(t, k19.K20())
	assert.True(t, k19.UseLegacyAdapter())

	nexusAlpha := version.New("19.90.101")
	assert.True(t, nexusAlpha.K20())
	assert.False(t, nexusAlpha.UseLegacyAdapter())

	omega := version.New("21.0")
	assert.True(t, omega.K21())
	assert.False(t, omega.UseLegacyAdapter())

	leia := version.New("")
	assert.True(t, leia.K18())
	assert.True(t, leia.UseLegacyAdapter())
	assert.Equal(t, "18.0.0 (effective 18)", leia.String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := version.Info{Major: 19, Minor: 90}
	b := version.Info{Major: 19, Minor: 90, Build: 1}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Less(b))
	assert.Equal(t, "19.90.1", b.String())
}

type failingSource struct{}

func (failingSource) BuildVersion(context.Context) (string, error) {
	return "", errors.New("connection refused")
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := version.Resolve(context.Background(), version.StaticSource("20.2 (20.2.0)"))
	assert.Equal(t, 20, r.Major)
	assert.Equal(t, "20.2 (20.2.0)", r.Raw)

	fallback := version.Resolve(context.Background(), failingSource{})
	assert.Equal(t, version.Info{Major: 18}, fallback.Info)
	assert.True(t, fallback.UseLegacyAdapter())
}
