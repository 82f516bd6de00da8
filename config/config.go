// Command-line configuration
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

// Package config declares and parses the server's command-line flags.
package config

import (
	"time"

	"github.com/alecthomas/kong"
)

// Config holds every knob the server accepts on the command line.
type Config struct {
	Port       int           `help:"TCP port to listen on." default:"2018"`
	Dict       string        `help:"Path to the dictionary word list." default:"dico_fr.txt" name:"dict"`
	Tours      int           `help:"Number of turns per session." default:"10" name:"tours"`
	Immediat   bool          `help:"Reject duplicate words immediately instead of at the end of a turn." name:"immediat"`
	Grilles    []string      `help:"Fixed grids to cycle through, repeating in order, instead of random ones." name:"grilles"`
	DureeTour  time.Duration `help:"Duration of a single turn." default:"180s" name:"duree_tour"`
	DureePause time.Duration `help:"Pause between two turns." default:"10s" name:"duree_pause"`

	Websocket bool `help:"Serve a read-only spectator feed over WebSocket." name:"websocket"`
	WWWPort   int  `help:"Port for the WebSocket spectator feed." default:"8080" name:"wwwport"`
}

// Parse reads args (via kong) into a Config, exiting the process with
// a usage message on error — the same behavior kong's default parser
// gives every CLI built on it.
func Parse(args []string) *Config {
	var cfg Config
	parser, err := kong.New(&cfg,
		kong.Name("mots-server"),
		kong.Description("Multiplayer Boggle-style word game server."),
	)
	if err != nil {
		panic(err)
	}
	if _, err := parser.Parse(args); err != nil {
		parser.FatalIfErrorf(err)
	}
	return &cfg
}
