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

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Actor is one entry in the cast of a video item. Cast order is
// presentation order and is not required to be unique.
type Actor struct {
	Name      string `mapstructure:"name"`
	Role      string `mapstructure:"role"`
	Thumbnail string `mapstructure:"thumbnail"`
	Order     int    `mapstructure:"order"`
}

// NewActor mirrors the positional constructor order Kodi uses:
// name, role, order, thumbnail.
func NewActor(name, role string, order int, thumbnail string) Actor {
	return Actor{Name: name, Role: role, Order: order, Thumbnail: thumbnail}
}

func (a *Actor) GetName() string      { return a.Name }
func (a *Actor) GetRole() string      { return a.Role }
func (a *Actor) GetOrder() int        { return a.Order }
func (a *Actor) GetThumbnail() string { return a.Thumbnail }

func (a *Actor) SetName(name string)           { a.Name = name }
func (a *Actor) SetRole(role string)           { a.Role = role }
func (a *Actor) SetOrder(order int)            { a.Order = order }
func (a *Actor) SetThumbnail(thumbnail string) { a.Thumbnail = thumbnail }

// Get reads a field by its Kodi keyword name.
func (a *Actor) Get(name string) (any, error) { return actorFields.get(a, name) }

// Set writes a field by its Kodi keyword name.
func (a *Actor) Set(name string, v any) error { return actorFields.set(a, name, v) }

// Map flattens the actor to the list-of-maps shape of the legacy SetCast.
func (a *Actor) Map() map[string]any { return toMap(a) }

// VideoStreamDetail describes one selectable video stream.
type VideoStreamDetail struct {
	Codec      string  `mapstructure:"codec"`
	StereoMode string  `mapstructure:"stereomode"`
	Language   string  `mapstructure:"language"`
	HDRType    string  `mapstructure:"hdrtype"`
	Aspect     float64 `mapstructure:"aspect" validate:"gte=0"`
	Width      int     `mapstructure:"width" validate:"gte=0"`
	Height     int     `mapstructure:"height" validate:"gte=0"`
	Duration   int     `mapstructure:"duration" validate:"gte=0"`
}

func (d *VideoStreamDetail) Get(name string) (any, error) { return videoStreamFields.get(d, name) }
func (d *VideoStreamDetail) Set(name string, v any) error { return videoStreamFields.set(d, name, v) }
func (d *VideoStreamDetail) Map() map[string]any          { return toMap(d) }

// AudioStreamDetail describes one selectable audio stream.
type AudioStreamDetail struct {
	Codec    string `mapstructure:"codec"`
	Language string `mapstructure:"language"`
	Channels int    `mapstructure:"channels" validate:"gte=-1"`
}

// NewAudioStreamDetail returns a detail with an unknown channel count.
func NewAudioStreamDetail() AudioStreamDetail {
	return AudioStreamDetail{Channels: -1}
}

func (d *AudioStreamDetail) Get(name string) (any, error) { return audioStreamFields.get(d, name) }
func (d *AudioStreamDetail) Set(name string, v any) error { return audioStreamFields.set(d, name, v) }
func (d *AudioStreamDetail) Map() map[string]any          { return toMap(d) }

// SubtitleStreamDetail describes one selectable subtitle stream.
type SubtitleStreamDetail struct {
	Language string `mapstructure:"language"`
}

func (d *SubtitleStreamDetail) Get(name string) (any, error) {
	return subtitleStreamFields.get(d, name)
}

func (d *SubtitleStreamDetail) Set(name string, v any) error {
	return subtitleStreamFields.set(d, name, v)
}

func (d *SubtitleStreamDetail) Map() map[string]any { return toMap(d) }

// Season is a numbered, optionally named, TV show season.
type Season struct {
	Name   string
	Number int
}

// Artwork is one entry of a scraper's available artwork list. Season is -1
// when the image does not belong to a season.
type Artwork struct {
	URL      string
	ArtType  string
	Preview  string
	Referrer string
	Cache    string
	Season   int
	Post     bool
	IsGz     bool
}

// ArtworkOptions are the optional arguments of the legacy
// AddAvailableArtwork call, where the season is still a string.
type ArtworkOptions struct {
	Preview  string
	Referrer string
	Cache    string
	Season   string
	Post     bool
	IsGz     bool
}

var actorFields = fieldTable[Actor]{
	"name":      stringField(func(a *Actor) *string { return &a.Name }),
	"role":      stringField(func(a *Actor) *string { return &a.Role }),
	"thumbnail": stringField(func(a *Actor) *string { return &a.Thumbnail }),
	"order":     intField(func(a *Actor) *int { return &a.Order }),
}

var videoStreamFields = fieldTable[VideoStreamDetail]{
	"width":      intField(func(d *VideoStreamDetail) *int { return &d.Width }),
	"height":     intField(func(d *VideoStreamDetail) *int { return &d.Height }),
	"aspect":     floatField(func(d *VideoStreamDetail) *float64 { return &d.Aspect }),
	"duration":   intField(func(d *VideoStreamDetail) *int { return &d.Duration }),
	"codec":      stringField(func(d *VideoStreamDetail) *string { return &d.Codec }),
	"stereomode": stringField(func(d *VideoStreamDetail) *string { return &d.StereoMode }),
	"language":   stringField(func(d *VideoStreamDetail) *string { return &d.Language }),
	"hdrtype":    stringField(func(d *VideoStreamDetail) *string { return &d.HDRType }),
}

var audioStreamFields = fieldTable[AudioStreamDetail]{
	"channels": intField(func(d *AudioStreamDetail) *int { return &d.Channels }),
	"codec":    stringField(func(d *AudioStreamDetail) *string { return &d.Codec }),
	"language": stringField(func(d *AudioStreamDetail) *string { return &d.Language }),
}

var subtitleStreamFields = fieldTable[SubtitleStreamDetail]{
	"language": stringField(func(d *SubtitleStreamDetail) *string { return &d.Language }),
}

// DecodeActor builds an actor from a keyword map. Unknown keys are
// rejected, values are converted weakly ("3" is a valid order).
func DecodeActor(values map[string]any) (Actor, error) {
	a := Actor{Order: -1}
	return a, decodeRecord(values, &a)
}

// DecodeVideoStream builds a video stream detail from a keyword map.
func DecodeVideoStream(values map[string]any) (VideoStreamDetail, error) {
	var d VideoStreamDetail
	return d, decodeRecord(values, &d)
}

// DecodeAudioStream builds an audio stream detail from a keyword map.
func DecodeAudioStream(values map[string]any) (AudioStreamDetail, error) {
	d := NewAudioStreamDetail()
	return d, decodeRecord(values, &d)
}

// DecodeSubtitleStream builds a subtitle stream detail from a keyword map.
func DecodeSubtitleStream(values map[string]any) (SubtitleStreamDetail, error) {
	var d SubtitleStreamDetail
	return d, decodeRecord(values, &d)
}

func decodeRecord(values map[string]any, dest any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	if err := validate.Struct(dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return nil
}

func toMap(record any) map[string]any {
	out := make(map[string]any)
	// Flat structs with string/number fields always decode into a map.
	_ = mapstructure.Decode(record, &out)
	return out
}
