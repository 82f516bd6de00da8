// Board game substrate
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

// Package board holds the stateful turn/score substrate of a game. Board
// is not safe for concurrent use; callers (the game façade) are expected
// to guard it with their own lock.
package board

import (
	"fmt"
	"sort"
	"strings"

	mots "go-mots"
)

// Board is the current grid, per-player submitted words, the set of words
// already played this turn, per-player cumulative scores, the turn
// counter, and the immediate-check mode.
type Board struct {
	grid         mots.Grid
	cycler       *mots.GridCycler
	scores       map[string]uint32
	playerWords  map[string][]string
	played       map[string]struct{}
	invalidWords map[string]struct{}
	immediate    bool
	turn         uint64
}

// New creates a board in immediate or deferred duplicate-check mode,
// optionally cycling through a fixed list of grid strings instead of
// generating random grids.
func New(immediate bool, grids []string) *Board {
	b := &Board{
		scores:       make(map[string]uint32),
		playerWords:  make(map[string][]string),
		played:       make(map[string]struct{}),
		invalidWords: make(map[string]struct{}),
		immediate:    immediate,
	}
	if len(grids) > 0 {
		b.cycler = mots.NewGridCycler(grids)
	}
	var blank mots.Grid
	for i := range blank {
		blank[i] = 'A'
	}
	b.grid = blank
	return b
}

func (b *Board) updateGrid() {
	b.grid = mots.NextOrRandom(b.cycler)
}

// Reset clears all per-turn and cumulative state, rolls a new grid and
// restarts the turn counter at 1.
func (b *Board) Reset() {
	b.updateGrid()
	b.invalidWords = make(map[string]struct{})
	for u := range b.scores {
		b.scores[u] = 0
	}
	b.playerWords = make(map[string][]string)
	b.played = make(map[string]struct{})
	b.turn = 1
}

// WelcomeStr renders BIENVENUE/<grid>/<turn>*user1*score1*.../\n.
func (b *Board) WelcomeStr() string {
	return fmt.Sprintf("BIENVENUE/%s/%d*%s/\n", b.grid, b.turn, b.scoresStr())
}

// GridStr is the 16 current letters, row-major.
func (b *Board) GridStr() string {
	return b.grid.String()
}

// AddUser sets username's score to 0; overwrites an existing entry.
func (b *Board) AddUser(username string) {
	b.scores[username] = 0
}

// RemoveUser drops username's score entry; a no-op if absent.
func (b *Board) RemoveUser(username string) {
	delete(b.scores, username)
}

func (b *Board) sortedUsers() []string {
	users := make([]string, 0, len(b.scores))
	for u := range b.scores {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

func (b *Board) scoresStr() string {
	users := b.sortedUsers()
	parts := make([]string, 0, len(users))
	for _, u := range users {
		parts = append(parts, fmt.Sprintf("%s*%d", u, b.UserScore(u)))
	}
	return strings.Join(parts, "*")
}

func (b *Board) wordsStr() string {
	users := b.sortedUsers()
	parts := make([]string, 0, len(users))
	for _, u := range users {
		words, ok := b.playerWords[u]
		if !ok || len(words) == 0 {
			parts = append(parts, u)
			continue
		}
		parts = append(parts, u+"*"+strings.Join(words, "*"))
	}
	return strings.Join(parts, "*")
}

// SubmitWord validates and records a submission, in order: trajectory
// syntax, word-trajectory match, user existence, then duplicate check.
// The returned bool is true when the submission is immediately accepted
// (always mirrors the board's immediate-check mode on success).
func (b *Board) SubmitWord(user, word, trajectory string) (bool, error) {
	t, err := mots.ParseTrajectory(trajectory)
	if err != nil {
		return false, err
	}

	word = strings.ToLower(word)
	if t.WordOf(b.grid) != word {
		return false, mots.ErrNoMatch(trajectory, word)
	}

	if _, ok := b.scores[user]; !ok {
		return false, mots.ErrNonExistingUser(user)
	}

	if _, ok := b.played[word]; ok {
		if b.immediate {
			return false, mots.ErrAlreadyPlayed(word, true)
		}
		b.invalidWords[word] = struct{}{}
		return false, mots.ErrAlreadyPlayed(word, false)
	}

	b.playerWords[user] = append(b.playerWords[user], word)
	b.played[word] = struct{}{}

	return b.immediate, nil
}

// NewTurn folds each player's turn score into their cumulative score,
// rolls the next grid, clears per-turn state and increments the turn
// counter.
func (b *Board) NewTurn() {
	b.updateUsersScores()
	b.updateGrid()
	b.playerWords = make(map[string][]string)
	b.played = make(map[string]struct{})
	b.invalidWords = make(map[string]struct{})
	b.turn++
}

// TurnScores renders the end-of-turn bilan message.
func (b *Board) TurnScores() string {
	return fmt.Sprintf("BILANMOTS/%s/%s/\n", b.wordsStr(), b.scoresStr())
}

// ScoresStr renders the user*score*user*score*... fragment used both in
// TurnScores and in the session-end VAINQUEUR broadcast.
func (b *Board) ScoresStr() string {
	return b.scoresStr()
}

func (b *Board) updateUsersScores() {
	next := make(map[string]uint32, len(b.scores))
	for user, score := range b.scores {
		next[user] = score + b.turnScore(user)
	}
	b.scores = next
}

// UserScore is the cumulative score plus the current turn's contribution.
func (b *Board) UserScore(user string) uint32 {
	return b.scores[user] + b.turnScore(user)
}

func (b *Board) turnScore(user string) uint32 {
	var total uint32
	for _, w := range b.playerWords[user] {
		if _, invalid := b.invalidWords[w]; invalid {
			continue
		}
		total += mots.WordScore(w)
	}
	return total
}
