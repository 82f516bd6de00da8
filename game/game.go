// Game façade
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

// Package game is the single coordination point composing the Board,
// the Players registry and the Dictionary under independent locks. It is
// the only place in the server that acquires more than one of those
// locks, and always in the order fixed below, to avoid deadlock.
package game

import (
	"fmt"
	"sync"

	mots "go-mots"
	"go-mots/board"
	"go-mots/dict"
	"go-mots/players"
)

// Game guards Board, Players and Dictionary with independent
// reader/writer locks, plus a turn-running condition that gates the
// welcome message of a client logging in between turns.
type Game struct {
	board   *board.Board
	plyrs   *players.Players
	dict    dict.Dict
	boardMu sync.RWMutex
	plyrsMu sync.RWMutex
	dictMu  sync.RWMutex

	turnMu      sync.Mutex
	turnCond    *sync.Cond
	turnRunning bool
}

func New(b *board.Board, p *players.Players, d dict.Dict) *Game {
	g := &Game{board: b, plyrs: p, dict: d}
	g.turnCond = sync.NewCond(&g.turnMu)
	return g
}

// Login adds the user to the Board, registers the connection with
// Players, then blocks until a turn is running before writing the
// welcome message — so a client connecting between turns never receives
// a grid that is about to be replaced.
func (g *Game) Login(username string, conn players.Conn) error {
	g.boardMu.Lock()
	g.board.AddUser(username)
	g.boardMu.Unlock()

	g.plyrsMu.Lock()
	err := g.plyrs.Login(username, conn)
	g.plyrsMu.Unlock()
	if err != nil {
		return err
	}

	g.turnMu.Lock()
	for !g.turnRunning {
		g.turnCond.Wait()
	}
	g.turnMu.Unlock()

	g.boardMu.RLock()
	welcome := g.board.WelcomeStr()
	g.boardMu.RUnlock()

	if _, err := conn.Write([]byte(welcome)); err != nil {
		return err
	}
	return nil
}

// Logout removes the user from Players, then from the Board.
func (g *Game) Logout(username string) error {
	g.plyrsMu.Lock()
	err := g.plyrs.Logout(username)
	g.plyrsMu.Unlock()
	if err != nil {
		return err
	}

	g.boardMu.Lock()
	g.board.RemoveUser(username)
	g.boardMu.Unlock()
	return nil
}

// Found checks dictionary membership first (so an unrecognized word
// short-circuits before any trajectory parsing), then submits the word
// to the Board.
func (g *Game) Found(username, word, trajectory string) (bool, error) {
	g.dictMu.RLock()
	ok := g.dict.Contains(word)
	g.dictMu.RUnlock()
	if !ok {
		return false, mots.ErrNonExistingWord(word)
	}

	g.boardMu.Lock()
	defer g.boardMu.Unlock()
	return g.board.SubmitWord(username, word, trajectory)
}

// NewTurn advances the Board to the next turn, broadcasts TOUR/<grid>/\n
// and wakes any client blocked in Login waiting for a turn to start.
func (g *Game) NewTurn() {
	g.boardMu.Lock()
	g.board.NewTurn()
	g.boardMu.Unlock()

	g.boardMu.RLock()
	grid := g.board.GridStr()
	g.boardMu.RUnlock()

	g.plyrsMu.Lock()
	g.plyrs.Broadcast(fmt.Sprintf("TOUR/%s/\n", grid))
	g.plyrsMu.Unlock()

	g.turnMu.Lock()
	g.turnRunning = true
	g.turnCond.Broadcast()
	g.turnMu.Unlock()
}

// EndTurn closes the turn-running gate, then broadcasts the RFIN/BILANMOTS
// pair summarizing the turn.
func (g *Game) EndTurn() {
	g.turnMu.Lock()
	g.turnRunning = false
	g.turnMu.Unlock()

	g.boardMu.Lock()
	bilan := g.board.TurnScores()
	g.boardMu.Unlock()

	g.plyrsMu.Lock()
	g.plyrs.Broadcast("RFIN/\n")
	g.plyrs.Broadcast(bilan)
	g.plyrsMu.Unlock()
}

// StartSession broadcasts SESSION/\n.
func (g *Game) StartSession() {
	g.plyrsMu.Lock()
	g.plyrs.Broadcast("SESSION/\n")
	g.plyrsMu.Unlock()
}

// EndSession broadcasts the final VAINQUEUR/<scores>/\n before resetting
// the Board for the next session.
func (g *Game) EndSession() {
	g.boardMu.Lock()
	scores := g.board.ScoresStr()
	g.boardMu.Unlock()

	g.plyrsMu.Lock()
	g.plyrs.Broadcast(fmt.Sprintf("VAINQUEUR/%s/\n", scores))
	g.plyrsMu.Unlock()

	g.boardMu.Lock()
	g.board.Reset()
	g.boardMu.Unlock()
}

// Chat delivers a private message from sender to receiver.
func (g *Game) Chat(sender, receiver, message string) error {
	g.plyrsMu.Lock()
	defer g.plyrsMu.Unlock()
	return g.plyrs.Chat(sender, receiver, message)
}

// ChatAll broadcasts RECEPTION/<message>/\n to every connected client.
func (g *Game) ChatAll(message string) error {
	g.plyrsMu.Lock()
	g.plyrs.Broadcast(fmt.Sprintf("RECEPTION/%s/\n", message))
	g.plyrsMu.Unlock()
	return nil
}

// IsConnected reports whether username currently has a live connection.
func (g *Game) IsConnected(username string) bool {
	g.plyrsMu.RLock()
	defer g.plyrsMu.RUnlock()
	return g.plyrs.IsConnected(username)
}

// PlayerCount is the number of currently logged-in users, consulted by
// the scheduler to decide whether to terminate at a turn boundary.
func (g *Game) PlayerCount() int {
	g.plyrsMu.RLock()
	defer g.plyrsMu.RUnlock()
	return len(g.plyrs.Users())
}

// AddSpectator registers a read-only broadcast tap that never counts
// toward PlayerCount and can never log in or submit requests.
func (g *Game) AddSpectator(conn players.Conn) {
	g.plyrsMu.Lock()
	g.plyrs.AddSpectator(conn)
	g.plyrsMu.Unlock()
}

// RemoveSpectator unregisters a previously added spectator tap.
func (g *Game) RemoveSpectator(conn players.Conn) {
	g.plyrsMu.Lock()
	g.plyrs.RemoveSpectator(conn)
	g.plyrsMu.Unlock()
}
