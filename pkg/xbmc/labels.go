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

package xbmc

import (
	"fmt"

	"golang.org/x/text/cases"
)

// InfoLabels is the flat label dictionary accepted by the bulk SetInfo call.
type InfoLabels map[string]any

// MediaType selects which info tag a bulk SetInfo call targets.
type MediaType string

const (
	MediaVideo    MediaType = "video"
	MediaMusic    MediaType = "music"
	MediaPictures MediaType = "pictures"
	MediaGame     MediaType = "game"
)

// ParseMediaType accepts the media type names Kodi accepts, ignoring case.
func ParseMediaType(s string) (MediaType, error) {
	switch FoldKey(s) {
	case "video":
		return MediaVideo, nil
	case "music":
		return MediaMusic, nil
	case "pictures", "picture":
		return MediaPictures, nil
	case "game":
		return MediaGame, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
	}
}

// StreamKind is the discriminator of AddStreamInfo.
type StreamKind string

const (
	StreamVideo    StreamKind = "video"
	StreamAudio    StreamKind = "audio"
	StreamSubtitle StreamKind = "subtitle"
)

// ParseStreamKind is strict: Kodi only knows the three lowercase kinds.
func ParseStreamKind(s string) (StreamKind, error) {
	switch StreamKind(s) {
	case StreamVideo, StreamAudio, StreamSubtitle:
		return StreamKind(s), nil
	default:
		return "", fmt.Errorf(
			"%w: must be one of video, audio, subtitle, not %q",
			ErrInvalidStreamKind, s,
		)
	}
}

// FoldKey normalises a label or property key for case-insensitive lookups.
func FoldKey(key string) string {
	return cases.Fold().String(key)
}

// Property names the resume point is stored under on legacy hosts.
const (
	PropResumeTime = "ResumeTime"
	PropTotalTime  = "TotalTime"
)
