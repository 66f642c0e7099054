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

// Package modern presents the flat info label API of Kodi 19 on top of a
// Kodi 20 (or newer) list item with structured info tags.
//
// The bulk SetInfo call is driven by a static transform table: each known
// label key runs a short chain of coercions and tag setters, and keys the
// table does not know are handed to the host's own SetInfo in one call.
package modern

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/ZaparooProject/kover/pkg/xbmc"
	"github.com/rs/zerolog/log"
)

// ListItem wraps a modern host item.
type ListItem struct {
	xbmc.ModernItem
	video       *VideoTag
	music       *MusicTag
	resumeTime  *float64
	resumeTotal *float64
}

var _ xbmc.ListItem = (*ListItem)(nil)

// NewListItem wraps host.
func NewListItem(host xbmc.ModernItem) *ListItem {
	return &ListItem{ModernItem: host}
}

// Host returns the wrapped modern item.
func (li *ListItem) Host() xbmc.ModernItem {
	return li.ModernItem
}

// GetVideoInfoTag returns the video tag wrapper, created on first use.
func (li *ListItem) GetVideoInfoTag() xbmc.VideoTag {
	if li.video == nil {
		li.video = &VideoTag{VideoInfoTag: li.ModernItem.GetVideoInfoTag()}
	}
	return li.video
}

// GetMusicInfoTag returns the music tag wrapper, created on first use.
func (li *ListItem) GetMusicInfoTag() xbmc.MusicTag {
	if li.music == nil {
		li.music = &MusicTag{MusicInfoTag: li.ModernItem.GetMusicInfoTag()}
	}
	return li.music
}

func (li *ListItem) hostVideo() xbmc.VideoInfoTag {
	return li.ModernItem.GetVideoInfoTag()
}

func (li *ListItem) hostTag(mt xbmc.MediaType) any {
	switch mt {
	case xbmc.MediaMusic:
		return li.ModernItem.GetMusicInfoTag()
	case xbmc.MediaPictures:
		return li.ModernItem.GetPictureInfoTag()
	case xbmc.MediaGame:
		return li.ModernItem.GetGameInfoTag()
	default:
		return li.hostVideo()
	}
}

// SetInfo applies a flat label dictionary through the structured tag of
// the media type. Keys are applied in sorted order. The first failing step
// stops the call with a *TransformError; labels applied before it are kept.
// Keys without a transform are passed to the host SetInfo together.
func (li *ListItem) SetInfo(mediaType string, labels xbmc.InfoLabels) error {
	mt, err := xbmc.ParseMediaType(mediaType)
	if err != nil {
		return err
	}
	tag := li.hostTag(mt)

	residual := make(xbmc.InfoLabels)
	for _, key := range slices.Sorted(maps.Keys(labels)) {
		steps, ok := Lookup(key)
		if !ok {
			residual[key] = labels[key]
			continue
		}
		value := labels[key]
		for _, step := range steps {
			value, err = step.apply(tag, value)
			if err != nil {
				log.Error().Err(err).
					Str("key", key).
					Str("op", step.String()).
					Str("media_type", string(mt)).
					Msg("incorrect info label")
				return &TransformError{Key: key, Op: step.String(), Err: err}
			}
		}
	}

	if len(residual) > 0 {
		return li.ModernItem.SetInfo(string(mt), residual)
	}
	return nil
}

// SetCast decodes the actor maps of the legacy call.
func (li *ListItem) SetCast(actors []map[string]any) error {
	cast := make([]xbmc.Actor, 0, len(actors))
	for _, m := range actors {
		a, err := xbmc.DecodeActor(m)
		if err != nil {
			return err
		}
		cast = append(cast, a)
	}
	li.hostVideo().SetCast(cast)
	return nil
}

// SetRating takes the legacy argument order, type first.
func (li *ListItem) SetRating(ratingType string, rating float64, votes int, isDefault bool) {
	li.hostVideo().SetRating(rating, votes, ratingType, isDefault)
}

func (li *ListItem) GetRating(key string) float64 {
	return li.hostVideo().GetRating(key)
}

func (li *ListItem) GetVotes(key string) int {
	return li.hostVideo().GetVotesAsInt(key)
}

func (li *ListItem) SetUniqueIDs(values map[string]string, defaultID string) {
	li.hostVideo().SetUniqueIDs(values, defaultID)
}

func (li *ListItem) GetUniqueID(key string) string {
	return li.hostVideo().GetUniqueID(key)
}

// AddStreamInfo builds the stream detail for kind from values.
func (li *ListItem) AddStreamInfo(kind string, values map[string]any) error {
	k, err := xbmc.ParseStreamKind(kind)
	if err != nil {
		return err
	}
	tag := li.hostVideo()
	switch k {
	case xbmc.StreamVideo:
		d, err := xbmc.DecodeVideoStream(values)
		if err != nil {
			return err
		}
		tag.AddVideoStream(d)
	case xbmc.StreamAudio:
		d, err := xbmc.DecodeAudioStream(values)
		if err != nil {
			return err
		}
		tag.AddAudioStream(d)
	case xbmc.StreamSubtitle:
		d, err := xbmc.DecodeSubtitleStream(values)
		if err != nil {
			return err
		}
		tag.AddSubtitleStream(d)
	}
	return nil
}

func (li *ListItem) AddSeason(number int, name string) {
	li.hostVideo().AddSeason(number, name)
}

// AddAvailableArtwork converts the season string to a number, -1 if empty.
func (li *ListItem) AddAvailableArtwork(url, artType string, opts xbmc.ArtworkOptions) error {
	season := -1
	if opts.Season != "" {
		n, err := strconv.Atoi(opts.Season)
		if err != nil {
			return fmt.Errorf("%w: artwork season %q", xbmc.ErrInvalidValue, opts.Season)
		}
		season = n
	}
	li.hostVideo().AddAvailableArtwork(xbmc.Artwork{
		URL:      url,
		ArtType:  artType,
		Preview:  opts.Preview,
		Referrer: opts.Referrer,
		Cache:    opts.Cache,
		Post:     opts.Post,
		IsGz:     opts.IsGz,
		Season:   season,
	})
	return nil
}
