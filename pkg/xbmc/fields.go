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

import "fmt"

// field is one entry of a record's accessor table.
type field[R any] struct {
	get func(*R) any
	set func(*R, any) error
}

// fieldTable maps folded field names to typed accessors. Tables are built
// once at package init and only read afterwards.
type fieldTable[R any] map[string]field[R]

func (t fieldTable[R]) get(r *R, name string) (any, error) {
	f, ok := t[FoldKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	return f.get(r), nil
}

func (t fieldTable[R]) set(r *R, name string, v any) error {
	f, ok := t[FoldKey(name)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
	}
	if err := f.set(r, v); err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	return nil
}

func stringField[R any](ptr func(*R) *string) field[R] {
	return field[R]{
		get: func(r *R) any { return *ptr(r) },
		set: func(r *R, v any) error {
			s, err := AsString(v)
			if err != nil {
				return err
			}
			*ptr(r) = s
			return nil
		},
	}
}

func intField[R any](ptr func(*R) *int) field[R] {
	return field[R]{
		get: func(r *R) any { return *ptr(r) },
		set: func(r *R, v any) error {
			i, err := AsInt(v)
			if err != nil {
				return err
			}
			*ptr(r) = i
			return nil
		},
	}
}

func floatField[R any](ptr func(*R) *float64) field[R] {
	return field[R]{
		get: func(r *R) any { return *ptr(r) },
		set: func(r *R, v any) error {
			f, err := AsFloat(v)
			if err != nil {
				return err
			}
			*ptr(r) = f
			return nil
		},
	}
}
