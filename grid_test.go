// Grid, trajectory and scoring tests
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

package mots

import (
	"testing"
)

func testGrid() Grid {
	g, _ := ParseGrid("LIDAREJULTNEATNG")
	return g
}

func TestGenerateRandomGrid(t *testing.T) {
	g := GenerateRandomGrid()
	for i, c := range g {
		found := false
		for _, face := range Dices[i] {
			if face == c {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("letter %c at position %d is not a face of dice %d", c, i, i)
		}
	}
}

func TestGridCyclerCyclesThroughFixedGrids(t *testing.T) {
	c := NewGridCycler([]string{"BBBBBBBBBBBBBBBB", "CCCCCCCCCCCCCCCC"})

	g, ok := c.Next()
	if !ok || g.String() != "BBBBBBBBBBBBBBBB" {
		t.Fatalf("expected first grid to be all-B, got %q (ok=%v)", g, ok)
	}
	g, ok = c.Next()
	if !ok || g.String() != "CCCCCCCCCCCCCCCC" {
		t.Fatalf("expected second grid to be all-C, got %q (ok=%v)", g, ok)
	}
	g, ok = c.Next()
	if !ok || g.String() != "BBBBBBBBBBBBBBBB" {
		t.Fatalf("expected cycle to wrap back to all-B, got %q (ok=%v)", g, ok)
	}
}

func TestGridCyclerEmptyReportsNotOk(t *testing.T) {
	c := NewGridCycler(nil)
	if _, ok := c.Next(); ok {
		t.Fatal("expected Next on an empty cycler to report ok=false")
	}
}

func TestParseCoord(t *testing.T) {
	for _, test := range []struct {
		row, col byte
		want     Coord
		ok       bool
	}{
		{'A', '1', Coord{'A', 1}, true},
		{'c', '2', Coord{'C', 2}, true},
		{'D', '4', Coord{'D', 4}, true},
		{'E', '1', Coord{}, false},
		{'A', '5', Coord{}, false},
	} {
		got, err := ParseCoord(test.row, test.col)
		if test.ok && (err != nil || got != test.want) {
			t.Errorf("ParseCoord(%c,%c) = %v, %v; want %v, nil", test.row, test.col, got, err, test.want)
		}
		if !test.ok && err == nil {
			t.Errorf("ParseCoord(%c,%c) should have failed", test.row, test.col)
		}
	}
}

func TestCoordIndex(t *testing.T) {
	for _, test := range []struct {
		c    Coord
		want int
	}{
		{Coord{'C', 2}, 9},
		{Coord{'A', 1}, 0},
		{Coord{'D', 4}, 15},
	} {
		if got := test.c.Index(); got != test.want {
			t.Errorf("%v.Index() = %d, want %d", test.c, got, test.want)
		}
	}
}

func TestParseTrajectoryOk(t *testing.T) {
	got, err := ParseTrajectory("C2B1A2A3B2C3D2")
	if err != nil {
		t.Fatalf("ParseTrajectory returned error: %v", err)
	}
	want := Trajectory{
		{'C', 2}, {'B', 1}, {'A', 2}, {'A', 3}, {'B', 2}, {'C', 3}, {'D', 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d coordinates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coordinate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseTrajectoryRejectsShort(t *testing.T) {
	if _, err := ParseTrajectory("A1B2"); err == nil {
		t.Fatal("expected a 2-square trajectory to be rejected")
	}
}

func TestParseTrajectoryRejectsDuplicateSquare(t *testing.T) {
	if _, err := ParseTrajectory("A2B1A2"); err == nil {
		t.Fatal("expected a trajectory revisiting a square to be rejected")
	}
}

func TestParseTrajectoryRejectsNonAdjacent(t *testing.T) {
	if _, err := ParseTrajectory("A1C3D4"); err == nil {
		t.Fatal("expected a trajectory with a non-adjacent jump to be rejected")
	}
}

func TestWordOf(t *testing.T) {
	tr, err := ParseTrajectory("C2B1A2A3B2C3D2")
	if err != nil {
		t.Fatalf("ParseTrajectory returned error: %v", err)
	}
	if got := tr.WordOf(testGrid()); got != "trident" {
		t.Errorf("WordOf() = %q, want %q", got, "trident")
	}
}

func TestWordScore(t *testing.T) {
	for _, test := range []struct {
		word string
		want uint32
	}{
		{"", 0},
		{"a", 0},
		{"ab", 0},
		{"abc", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"abcdef", 3},
		{"abcdefg", 5},
		{"abcdefgh", 11},
		{"abcdefghi", 11},
	} {
		if got := WordScore(test.word); got != test.want {
			t.Errorf("WordScore(%q) = %d, want %d", test.word, got, test.want)
		}
	}
}
