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

// Package legacy presents the structured info tag API of Kodi 20 on top of
// a Kodi 19 (or older) list item, which only takes metadata as flat label
// dictionaries.
//
// Every typed setter on a tag records the value in a per-tag side table and,
// unless sync is turned off, writes it straight through to the host with a
// one-entry SetInfo call. Getters read the host tag, apart from the few that
// have no flat equivalent and are answered from the side table or the
// item's properties.
package legacy

import (
	"github.com/ZaparooProject/kover/pkg/xbmc"
)

type options struct {
	sync bool
}

// Option configures a ListItem.
type Option func(*options)

// WithSync controls whether tag setters are written through to the host
// immediately. It is on by default. With sync off, setters only fill the
// side table, readable through the tag's Get method.
func WithSync(sync bool) Option {
	return func(o *options) {
		o.sync = sync
	}
}

// ListItem wraps a legacy host item. Flat item operations pass straight
// through to the host.
type ListItem struct {
	xbmc.LegacyItem
	video *VideoTag
	music *MusicTag
	opts  options
}

var _ xbmc.ListItem = (*ListItem)(nil)

// NewListItem wraps host.
func NewListItem(host xbmc.LegacyItem, opts ...Option) *ListItem {
	o := options{sync: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &ListItem{LegacyItem: host, opts: o}
}

// Host returns the wrapped legacy item.
func (li *ListItem) Host() xbmc.LegacyItem {
	return li.LegacyItem
}

// GetVideoInfoTag returns the video tag wrapper, created on first use and
// reused for the lifetime of the item.
func (li *ListItem) GetVideoInfoTag() xbmc.VideoTag {
	return li.Video()
}

// GetMusicInfoTag returns the music tag wrapper, created on first use.
func (li *ListItem) GetMusicInfoTag() xbmc.MusicTag {
	return li.Music()
}

// Video is GetVideoInfoTag returning the concrete wrapper.
func (li *ListItem) Video() *VideoTag {
	if li.video == nil {
		li.video = &VideoTag{
			LegacyVideoTag: li.LegacyItem.GetVideoInfoTag(),
			tag:            newTag(li.LegacyItem, xbmc.MediaVideo, li.opts.sync),
		}
	}
	return li.video
}

// Music is GetMusicInfoTag returning the concrete wrapper.
func (li *ListItem) Music() *MusicTag {
	if li.music == nil {
		li.music = &MusicTag{
			LegacyMusicTag: li.LegacyItem.GetMusicInfoTag(),
			tag:            newTag(li.LegacyItem, xbmc.MediaMusic, li.opts.sync),
		}
	}
	return li.music
}
