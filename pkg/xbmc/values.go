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
	"math"
)

// The As* helpers convert label values as they arrive from addon code or a
// decoded JSON/TOML/YAML document into the exact type a typed setter takes.
// They are strict about kind: a string is never parsed into a number here,
// that is the job of the info-label coercions in the modern adapter.

// AsString accepts strings and fmt.Stringer values.
func AsString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, v)
	}
}

// AsStrings accepts a string slice or a slice of strings held as []any.
func AsStrings(v any) ([]string, error) {
	switch s := v.(type) {
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for i, item := range s {
			str, err := AsString(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected list of strings, got %T", ErrInvalidValue, v)
	}
}

// AsInt accepts any integer kind and floats without a fraction.
func AsInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil //nolint:gosec // label values are small
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil //nolint:gosec // label values are small
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrInvalidValue, v)
	}
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: expected integer, got %v", ErrInvalidValue, f)
	}
	return int(f), nil
}

// AsFloat accepts any integer or float kind.
func AsFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		i, err := AsInt(v)
		if err != nil {
			return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalidValue, v)
		}
		return float64(i), nil
	}
}

// AsBool accepts booleans and integers (non-zero is true).
func AsBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	i, err := AsInt(v)
	if err != nil {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidValue, v)
	}
	return i != 0, nil
}
