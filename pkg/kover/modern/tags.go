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

package modern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZaparooProject/kover/pkg/xbmc"
)

// VideoTag adds the single-value getters of the legacy API to a structured
// video tag.
type VideoTag struct {
	xbmc.VideoInfoTag
}

var _ xbmc.VideoTag = (*VideoTag)(nil)

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (t *VideoTag) GetGenre() string          { return first(t.GetGenres()) }
func (t *VideoTag) GetDirector() string       { return first(t.GetDirectors()) }
func (t *VideoTag) GetWritingCredits() string { return first(t.GetWriters()) }
func (t *VideoTag) GetLastPlayed() string     { return t.GetLastPlayedAsW3C() }
func (t *VideoTag) GetFirstAired() string     { return t.GetFirstAiredAsW3C() }
func (t *VideoTag) GetPremiered() string      { return t.GetPremieredAsW3C() }

// GetVotes returns the votes of the default rating as a string.
func (t *VideoTag) GetVotes() string {
	return strconv.Itoa(t.GetVotesAsInt(""))
}

// GetCast renders one "Name: Role" line per actor.
func (t *VideoTag) GetCast() string {
	actors := t.GetActors()
	lines := make([]string, 0, len(actors))
	for i := range actors {
		lines = append(lines, fmt.Sprintf("%s: %s", actors[i].GetName(), actors[i].GetRole()))
	}
	return strings.Join(lines, "\n")
}

// MusicTag adds the single-value getters of the legacy API to a structured
// music tag.
type MusicTag struct {
	xbmc.MusicInfoTag
}

var _ xbmc.MusicTag = (*MusicTag)(nil)

func (t *MusicTag) GetGenre() string      { return first(t.GetGenres()) }
func (t *MusicTag) GetLastPlayed() string { return t.GetLastPlayedAsW3C() }
