// Grid, trajectory and scoring primitives
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
	"math/rand"
	"regexp"
	"strings"
)

// Dices holds the 16 fixed six-face French Boggle dice, row-major.
var Dices = [16][6]byte{
	{'E', 'T', 'U', 'K', 'N', 'O'},
	{'E', 'V', 'G', 'T', 'I', 'N'},
	{'D', 'E', 'C', 'A', 'M', 'P'},
	{'I', 'E', 'L', 'R', 'U', 'W'},
	{'E', 'H', 'I', 'F', 'S', 'E'},
	{'R', 'E', 'C', 'A', 'L', 'S'},
	{'E', 'N', 'T', 'D', 'O', 'S'},
	{'O', 'F', 'X', 'R', 'I', 'A'},
	{'N', 'A', 'V', 'E', 'D', 'Z'},
	{'E', 'I', 'O', 'A', 'T', 'A'},
	{'G', 'L', 'E', 'N', 'Y', 'U'},
	{'B', 'M', 'A', 'Q', 'J', 'O'},
	{'T', 'L', 'I', 'B', 'R', 'A'},
	{'S', 'P', 'U', 'L', 'T', 'E'},
	{'A', 'I', 'M', 'S', 'O', 'R'},
	{'E', 'N', 'H', 'R', 'I', 'S'},
}

// Grid is the 16-letter row-major Boggle cube, rows A-D, columns 1-4.
type Grid [16]byte

func (g Grid) String() string { return string(g[:]) }

var gridPattern = regexp.MustCompile(`^[a-zA-Z]{16}$`)

// GenerateRandomGrid rolls each of the 16 dice independently.
func GenerateRandomGrid() Grid {
	var g Grid
	for i, dice := range Dices {
		g[i] = dice[rand.Intn(len(dice))]
	}
	return g
}

// ParseGrid accepts a 16-letter string and uppercases it into a Grid.
func ParseGrid(s string) (Grid, bool) {
	if !gridPattern.MatchString(s) {
		return Grid{}, false
	}
	var g Grid
	copy(g[:], strings.ToUpper(s))
	return g, true
}

// GridCycler cycles through a fixed, caller-supplied list of grids,
// rotating it so the sequence repeats indefinitely; the list never runs
// out. Random generation is used by NextOrRandom only when no list was
// configured or an entry fails to parse.
type GridCycler struct {
	grids []string
}

func NewGridCycler(grids []string) *GridCycler {
	cp := make([]string, len(grids))
	copy(cp, grids)
	return &GridCycler{grids: cp}
}

// Next pops the front grid and pushes it to the back, or reports ok=false
// if no fixed grids were configured or the front entry fails to parse.
func (c *GridCycler) Next() (g Grid, ok bool) {
	if len(c.grids) == 0 {
		return Grid{}, false
	}
	s := c.grids[0]
	c.grids = append(c.grids[1:], s)
	return ParseGrid(s)
}

// NextOrRandom returns the next cycled grid, or a freshly rolled random
// grid if no fixed list was configured.
func NextOrRandom(c *GridCycler) Grid {
	if c != nil {
		if g, ok := c.Next(); ok {
			return g
		}
	}
	return GenerateRandomGrid()
}

// Coord is a single grid cell, row A-D and column 1-4.
type Coord struct {
	Row byte
	Col int
}

// Trajectory is an ordered, non-self-intersecting sequence of 8-adjacent
// cells, as submitted with a TROUVE request.
type Trajectory []Coord

func indexOfLetter(row byte) int {
	switch row {
	case 'A':
		return 0
	case 'B':
		return 1
	case 'C':
		return 2
	case 'D':
		return 3
	default:
		panic("illegal row index")
	}
}

// ParseCoord validates and normalizes a single row/column pair.
func ParseCoord(row, col byte) (Coord, error) {
	r := row
	switch r {
	case 'a':
		r = 'A'
	case 'b':
		r = 'B'
	case 'c':
		r = 'C'
	case 'd':
		r = 'D'
	}
	if r < 'A' || r > 'D' || col < '1' || col > '4' {
		return Coord{}, ErrInvalidCoordinates(row, int(col-'0'))
	}
	return Coord{Row: r, Col: int(col - '0')}, nil
}

// Index returns the offset of the cell within a row-major 16-letter grid.
func (c Coord) Index() int {
	return 4*indexOfLetter(c.Row) + (c.Col - 1)
}

// ParseTrajectory splits a flat "row,col,row,col,..." string (e.g.
// "C2B1A2A3B2C3D2") into coordinate pairs and validates it: length must be
// even and at least 6 characters (3 squares), no square may repeat, and
// every consecutive pair must be distinct and 8-adjacent.
func ParseTrajectory(s string) (Trajectory, error) {
	if len(s)%2 != 0 || len(s) < 6 {
		return nil, ErrBadTrajectory(s)
	}

	t := make(Trajectory, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCoord(s[i], s[i+1])
		if err != nil {
			return nil, ErrBadTrajectory(s)
		}
		t = append(t, c)
	}

	if !t.valid() {
		return nil, ErrBadTrajectory(s)
	}
	return t, nil
}

func (t Trajectory) valid() bool {
	seen := make(map[Coord]struct{}, len(t))
	for _, c := range t {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	for i := 0; i+1 < len(t); i++ {
		if !adjacent(t[i], t[i+1]) {
			return false
		}
	}
	return true
}

func adjacent(a, b Coord) bool {
	dr := indexOfLetter(a.Row) - indexOfLetter(b.Row)
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr == 0 && dc == 0 {
		return false
	}
	return dr <= 1 && dc <= 1
}

// WordOf reads the grid letters along t and lowercases the result.
func (t Trajectory) WordOf(g Grid) string {
	buf := make([]byte, len(t))
	for i, c := range t {
		buf[i] = g[c.Index()]
	}
	return strings.ToLower(string(buf))
}

// WordScore is the fixed length-based score table.
func WordScore(word string) uint32 {
	switch n := len(word); {
	case n <= 2:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}
