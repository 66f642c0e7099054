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

package fixtures

import "github.com/ZaparooProject/kover/pkg/platforms/shared/kodi"

// BuildVersion is a System.BuildVersion label seen on a real Kodi release,
// with the effective major it resolves to.
type BuildVersion struct {
	Name      string
	Label     string
	Effective int
}

// BuildVersions covers every release line the adapters distinguish,
// including the pre-release builds whose minor is bumped to 90.
var BuildVersions = []BuildVersion{
	{Name: "leia", Label: "18.9 (18.9.0) Git:20201023-0655c2c718", Effective: 18},
	{Name: "matrix alpha", Label: "18.9.701 (19.0.0) Git:20200322-1f0a0c1a52", Effective: 19},
	{Name: "matrix", Label: "19.4 (19.4.0) Git:20220302-e0e3a52d3a", Effective: 19},
	{Name: "nexus alpha", Label: "19.90.101 (20.0.0) Git:20220601-4ed4d7b5b2", Effective: 20},
	{Name: "nexus", Label: "20.2 (20.2.0) Git:20230629-5f418d0b13", Effective: 20},
	{Name: "omega beta", Label: "20.90.821 (21.0.0) Git:20231120-4aff5b8cbe", Effective: 21},
	{Name: "omega", Label: "21.1 (21.1.0) Git:20240818-c8d3e1bb38", Effective: 21},
}

// NexusAppVersion is the Application.GetProperties version of a Kodi 20.2
// stable build.
var NexusAppVersion = kodi.AppVersion{
	Major:    20,
	Minor:    2,
	Tag:      "stable",
	Revision: "20230629-5f418d0b13",
}

// OmegaBetaAppVersion is the version of a Kodi 21 beta build.
var OmegaBetaAppVersion = kodi.AppVersion{
	Major:  20,
	Minor:  90,
	Tag:    "beta",
	TagVer: "2",
}

// MovieLabels is a K19 style label dictionary for a movie.
var MovieLabels = map[string]any{
	"title":         "The Matrix",
	"originaltitle": "The Matrix",
	"year":          1999,
	"genre":         []any{"Action", "Sci-Fi"},
	"director":      "Lana Wachowski / Lilly Wachowski",
	"rating":        "8.7",
	"votes":         "1,234,567",
	"duration":      8160,
	"mpaa":          "R",
	"plot":          "A hacker learns the true nature of reality.",
	"imdbnumber":    "tt0133093",
	"premiered":     "1999-03-31",
	"mediatype":     "movie",
	"playcount":     "2",
	"castandrole":   []any{[]any{"Keanu Reeves", "Neo"}, []any{"Carrie-Anne Moss", "Trinity"}},
}

// SongLabels is a K19 style label dictionary for a song.
var SongLabels = map[string]any{
	"title":       "Paranoid Android",
	"artist":      "Radiohead",
	"album":       "OK Computer",
	"tracknumber": "2",
	"discnumber":  1,
	"duration":    383,
	"year":        "1997",
	"genre":       "Alternative",
	"mediatype":   "song",
	"rating":      "4.5",
}
