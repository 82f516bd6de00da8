// Board game substrate tests
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

package board

import (
	"errors"
	"testing"

	mots "go-mots"
)

func testBoard() *Board {
	b := New(true, nil)
	b.grid = [16]byte{
		'L', 'I', 'D', 'A',
		'R', 'E', 'J', 'U',
		'L', 'T', 'N', 'E',
		'A', 'T', 'N', 'G',
	}
	b.turn = 1
	return b
}

func asServerError(t *testing.T, err error) *mots.ServerError {
	t.Helper()
	var se *mots.ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected a *mots.ServerError, got %T: %v", err, err)
	}
	return se
}

func TestUpdateGridCyclesFixedGrids(t *testing.T) {
	b := New(true, []string{"BBBBBBBBBBBBBBBB", "CCCCCCCCCCCCCCCC"})
	b.updateGrid()
	if got := b.GridStr(); got != "BBBBBBBBBBBBBBBB" {
		t.Fatalf("GridStr() = %q, want all-B", got)
	}
	b.updateGrid()
	if got := b.GridStr(); got != "CCCCCCCCCCCCCCCC" {
		t.Fatalf("GridStr() = %q, want all-C", got)
	}
	b.updateGrid()
	if got := b.GridStr(); got != "BBBBBBBBBBBBBBBB" {
		t.Fatalf("GridStr() = %q, want cycle back to all-B", got)
	}
}

func TestSubmitWord(t *testing.T) {
	b := testBoard()
	b.immediate = false
	b.AddUser("user1")

	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("SubmitWord returned error: %v", err)
	}
	if got := b.UserScore("user1"); got != 5 {
		t.Errorf("UserScore(user1) = %d, want 5", got)
	}
}

func TestSubmitAlreadyPlayedWord(t *testing.T) {
	b := testBoard()
	b.immediate = false
	b.AddUser("user1")
	b.AddUser("user2")

	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if _, err := b.SubmitWord("user1", "ile", "A2A1B2"); err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	_, err := b.SubmitWord("user2", "trident", "C2B1A2A3B2C3D2")
	se := asServerError(t, err)
	if se.Kind != mots.AlreadyPlayed {
		t.Errorf("expected AlreadyPlayed, got %v", se.Kind)
	}

	if got := b.UserScore("user1"); got != 1 {
		t.Errorf("UserScore(user1) = %d, want 1 (trident excluded after duplicate)", got)
	}
	if got := b.UserScore("user2"); got != 0 {
		t.Errorf("UserScore(user2) = %d, want 0", got)
	}
}

func TestSubmitAlreadyPlayedWordIsCaseInsensitive(t *testing.T) {
	b := testBoard()
	b.immediate = true
	b.AddUser("user1")
	b.AddUser("user2")

	if _, err := b.SubmitWord("user1", "Trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	_, err := b.SubmitWord("user2", "TRIDENT", "C2B1A2A3B2C3D2")
	se := asServerError(t, err)
	if se.Kind != mots.AlreadyPlayed {
		t.Errorf("expected AlreadyPlayed for a differently-cased resubmission, got %v", se.Kind)
	}
}

func TestSubmitWordAddsToPlayed(t *testing.T) {
	b := testBoard()
	b.AddUser("user1")
	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("SubmitWord returned error: %v", err)
	}
	if _, ok := b.played["trident"]; !ok {
		t.Error("expected trident to be recorded in the played set")
	}
	if got := b.playerWords["user1"]; len(got) != 1 || got[0] != "trident" {
		t.Errorf("playerWords[user1] = %v, want [trident]", got)
	}
}

func TestSubmitWordNoMatch(t *testing.T) {
	b := testBoard()
	b.AddUser("user1")
	_, err := b.SubmitWord("user1", "ile", "C2B1A2A3B2C3D2")
	se := asServerError(t, err)
	if se.Kind != mots.NoMatch {
		t.Errorf("expected NoMatch, got %v", se.Kind)
	}
}

func TestSubmitWordNonExistingUser(t *testing.T) {
	b := testBoard()
	_, err := b.SubmitWord("ghost", "trident", "C2B1A2A3B2C3D2")
	se := asServerError(t, err)
	if se.Kind != mots.NonExistingUser {
		t.Errorf("expected NonExistingUser, got %v", se.Kind)
	}
}

func TestWelcomeStr(t *testing.T) {
	b := testBoard()
	b.AddUser("user1")
	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("SubmitWord returned error: %v", err)
	}
	want := "BIENVENUE/LIDAREJULTNEATNG/1*user1*5/\n"
	if got := b.WelcomeStr(); got != want {
		t.Errorf("WelcomeStr() = %q, want %q", got, want)
	}
}

func TestNewTurn(t *testing.T) {
	b := testBoard()
	oldGrid, oldTurn := b.grid, b.turn

	b.NewTurn()

	if b.turn != oldTurn+1 {
		t.Errorf("turn = %d, want %d", b.turn, oldTurn+1)
	}
	if len(b.playerWords) != 0 || len(b.played) != 0 || len(b.invalidWords) != 0 {
		t.Error("expected per-turn state to be cleared")
	}
	if b.grid == oldGrid {
		t.Error("expected the grid to change after a new turn")
	}
}

func TestScoresUpdatedAfterNewTurn(t *testing.T) {
	b := testBoard()
	b.AddUser("user1")
	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("SubmitWord returned error: %v", err)
	}
	if b.scores["user1"] != 0 {
		t.Fatalf("cumulative score before new turn = %d, want 0", b.scores["user1"])
	}
	b.NewTurn()
	if b.scores["user1"] != 5 {
		t.Errorf("cumulative score after new turn = %d, want 5", b.scores["user1"])
	}
}

func TestReset(t *testing.T) {
	b := testBoard()
	oldGrid := b.grid

	b.Reset()

	if b.turn != 1 {
		t.Errorf("turn = %d, want 1", b.turn)
	}
	if len(b.playerWords) != 0 || len(b.played) != 0 {
		t.Error("expected per-turn state to be cleared")
	}
	if b.grid == oldGrid {
		t.Error("expected the grid to change on reset")
	}
}

func TestAddUserIsIdempotentOverwrite(t *testing.T) {
	b := testBoard()
	b.AddUser("user1")
	if _, err := b.SubmitWord("user1", "trident", "C2B1A2A3B2C3D2"); err != nil {
		t.Fatalf("SubmitWord returned error: %v", err)
	}
	b.NewTurn()
	if b.UserScore("user1") != 5 {
		t.Fatalf("expected score to carry over before re-adding")
	}
	b.AddUser("user1")
	if b.UserScore("user1") != 0 {
		t.Errorf("expected AddUser to reset score to 0, got %d", b.UserScore("user1"))
	}
}

func TestRemoveUserNoOpIfAbsent(t *testing.T) {
	b := testBoard()
	b.RemoveUser("ghost") // must not panic
}
