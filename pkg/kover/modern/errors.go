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

import "fmt"

// TransformError is returned by SetInfo when one step of an info label's
// transform fails. Labels applied before it stay applied.
type TransformError struct {
	Err error
	Key string
	Op  string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("info label %q (%s): %v", e.Key, e.Op, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
