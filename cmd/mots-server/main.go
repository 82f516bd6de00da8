// Entry point
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

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"go-mots/board"
	"go-mots/config"
	"go-mots/dict"
	"go-mots/game"
	"go-mots/logging"
	"go-mots/players"
	"go-mots/protocol"
	"go-mots/scheduler"
	"go-mots/spectator"
)

func main() {
	cfg := config.Parse(os.Args[1:])

	d, err := dict.NewLocalDict(cfg.Dict)
	if err != nil {
		log.Fatalf("cannot open dictionary %s: %v", cfg.Dict, err)
	}

	b := board.New(cfg.Immediat, cfg.Grilles)
	p := players.New()
	g := game.New(b, p, d)

	logger := logging.New()

	sched := scheduler.New(cfg.Tours, cfg.DureeTour, cfg.DureePause)
	loginGate := &schedulingController{game: g, sched: sched}

	if _, err := protocol.Listen(cfg.Port, loginGate, logger); err != nil {
		log.Fatalf("cannot listen on port %d: %v", cfg.Port, err)
	}
	fmt.Printf("Serving on port %d...\n", cfg.Port)

	if cfg.Websocket {
		http.HandleFunc("/socket", spectator.Handler(g))
		addr := fmt.Sprintf("127.0.0.1:%d", cfg.WWWPort)
		go func() {
			log.Fatal(http.ListenAndServe(addr, nil))
		}()
		fmt.Printf("Serving spectator WebSocket on %s/socket...\n", addr)
	}

	select {}
}

// schedulingController wraps the Game façade so that every login attempt
// first ensures the session/turn scheduler is running; Ensure comes before
// Game.Login because Login blocks until a turn has started. The scheduler
// thus starts lazily on the first login, and after it has terminated
// because the player count reached zero, the next login relaunches it.
type schedulingController struct {
	game  *game.Game
	sched *scheduler.Scheduler
}

func (c *schedulingController) Login(username string, conn players.Conn) error {
	c.sched.Ensure(c.game)
	return c.game.Login(username, conn)
}

func (c *schedulingController) Logout(username string) error {
	return c.game.Logout(username)
}

func (c *schedulingController) Found(username, word, trajectory string) (bool, error) {
	return c.game.Found(username, word, trajectory)
}

func (c *schedulingController) Chat(sender, receiver, message string) error {
	return c.game.Chat(sender, receiver, message)
}

func (c *schedulingController) ChatAll(message string) error {
	return c.game.ChatAll(message)
}

func (c *schedulingController) IsConnected(username string) bool {
	return c.game.IsConnected(username)
}
