// Session/turn scheduler
//
// Copyright (c) 2026 The go-mots Authors
//
// This file is part of go-mots.
//
// go-mots is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mots is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mots. If not, see
// <http://www.gnu.org/licenses/>

// Package scheduler drives the long-running session/turn timer loop.
// Exactly one instance of the loop may run at a time per Scheduler value;
// Ensure enforces this with a mutex + bool, lazily starting the loop on
// the first call and allowing it to be relaunched once it has exited.
package scheduler

import (
	"sync"
	"time"
)

// Controller is the subset of the game façade the scheduler drives. It is
// an interface so the turn rhythm can be tested without a real Game.
type Controller interface {
	StartSession()
	NewTurn()
	EndTurn()
	EndSession()
	PlayerCount() int
}

// Scheduler owns the session rhythm: start session, N turns of
// (new turn, sleep, end turn, sleep), end session, repeat — unless the
// player count drops to zero at a turn boundary, in which case the loop
// terminates so that the next login can relaunch it.
type Scheduler struct {
	Turns         int
	TurnDuration  time.Duration
	PauseDuration time.Duration

	// Sleep defaults to time.Sleep; tests override it to run the loop
	// without waiting on real durations.
	Sleep func(time.Duration)

	mu      sync.Mutex
	running bool
}

func New(turns int, turnDuration, pauseDuration time.Duration) *Scheduler {
	return &Scheduler{
		Turns:         turns,
		TurnDuration:  turnDuration,
		PauseDuration: pauseDuration,
		Sleep:         time.Sleep,
	}
}

// Ensure starts the loop in a new goroutine unless one is already
// running. Safe to call on every login.
func (s *Scheduler) Ensure(ctl Controller) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.run(ctl)
}

// Running reports whether the loop is currently active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(ctl Controller) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	for {
		ctl.StartSession()

		terminated := false
		for i := 0; i < s.Turns; i++ {
			ctl.NewTurn()
			s.Sleep(s.TurnDuration)
			ctl.EndTurn()
			s.Sleep(s.PauseDuration)

			if ctl.PlayerCount() == 0 {
				terminated = true
				break
			}
		}

		if terminated {
			return
		}
		ctl.EndSession()
	}
}
