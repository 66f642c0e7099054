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

//go:build deadlock

// Package syncutil provides the mutex types kover locks with. Building with
// -tags=deadlock swaps them for go-deadlock's detecting versions.
package syncutil

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = true

// TimeoutEnv overrides DefaultTimeout, as a time.ParseDuration string.
const TimeoutEnv = "KOVER_DEADLOCK_TIMEOUT"

// DefaultTimeout is how long a lock may be waited on before it is reported.
const DefaultTimeout = 30 * time.Second

func init() {
	deadlock.Opts.DeadlockTimeout = DefaultTimeout
	if v := os.Getenv(TimeoutEnv); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Warn().Err(err).Str("value", v).Msg("ignoring invalid deadlock timeout")
		} else {
			deadlock.Opts.DeadlockTimeout = d
		}
	}
	deadlock.Opts.OnPotentialDeadlock = func() {
		log.Error().Dur("timeout", deadlock.Opts.DeadlockTimeout).Msg("potential deadlock detected")
	}
}

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	deadlock.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	deadlock.RWMutex
}
