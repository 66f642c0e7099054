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
	"golang.org/x/exp/constraints"
)

// OneOrMore wraps a scalar value in a one-element list. Lists pass through.
func OneOrMore(v any) any {
	switch v.(type) {
	case []string, []any:
		return v
	default:
		return []any{v}
	}
}

// IntOrNone converts a label to an integer. Strings may carry thousands
// separators ("1,234") and a fraction, which is rounded half up ("12.6" is
// 13). An empty string or nil is -1.
func IntOrNone(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return -1, nil
	case string:
		return parseIntLabel(n)
	case float64:
		return roundHalfUp(n), nil
	case float32:
		return roundHalfUp(n), nil
	default:
		i, err := xbmc.AsInt(v)
		if err != nil {
			return 0, fmt.Errorf("int label: %w", err)
		}
		return i, nil
	}
}

func parseIntLabel(s string) (int, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return -1, nil
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: int label %q", xbmc.ErrInvalidValue, s)
		}
		return roundHalfUp(f), nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: int label %q", xbmc.ErrInvalidValue, s)
	}
	return i, nil
}

// FloatOrNone converts a label to a float. A string with a single comma and
// no dot uses the comma as the decimal separator ("1,5" is 1.5); otherwise
// commas are thousands separators ("1,234.5" is 1234.5). An empty string or
// nil is -1.
func FloatOrNone(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return -1, nil
	case string:
		return parseFloatLabel(n)
	default:
		f, err := xbmc.AsFloat(v)
		if err != nil {
			return 0, fmt.Errorf("float label: %w", err)
		}
		return f, nil
	}
}

func parseFloatLabel(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: float label %q", xbmc.ErrInvalidValue, s)
	}
	return f, nil
}

// roundHalfUp adds a half and truncates toward zero.
func roundHalfUp[F constraints.Float](f F) int {
	return int(float64(f) + .5)
}

// asStringList accepts a list or a single string.
func asStringList(v any) ([]string, error) {
	if s, ok := v.(string); ok {
		return []string{s}, nil
	}
	return xbmc.AsStrings(v)
}

// asJoinedString accepts a string or a list, joined the way Kodi displays
// multi-value labels.
func asJoinedString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	list, err := xbmc.AsStrings(v)
	if err != nil {
		return "", err
	}
	return strings.Join(list, " / "), nil
}
