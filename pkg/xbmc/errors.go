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

import "errors"

var (
	// ErrNotImplemented is returned by operations an adapter refuses to
	// emulate. Calling one is a programming error in the addon.
	ErrNotImplemented = errors.New("not implemented")

	// ErrAttributeNotFound is returned when a record or tag is asked for a
	// field it does not declare.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrInvalidValue is returned when a value cannot be converted to the
	// type a field or setter expects.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidStreamKind is returned for a stream kind other than
	// video, audio or subtitle.
	ErrInvalidStreamKind = errors.New("invalid stream kind")

	// ErrInvalidMediaType is returned for a media type other than video,
	// music, pictures or game.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrUnsupportedField is returned when an info tag has no setter for a
	// named field.
	ErrUnsupportedField = errors.New("unsupported field")
)
