// Read-only WebSocket spectator feed
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

// Package spectator exposes a read-only broadcast tap over WebSocket.
// It is entirely optional (off unless --websocket is passed) and never
// participates in gameplay: a spectator connection never counts toward
// PlayerCount, never appears in Users(), and cannot log in, submit
// words or chat — it only ever receives what the Players registry
// broadcasts to everyone else.
package spectator

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"go-mots/players"
)

// Game is the subset of the game façade a spectator feed needs.
type Game interface {
	AddSpectator(conn players.Conn)
	RemoveSpectator(conn players.Conn)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsConn adapts a *websocket.Conn to players.Conn, serializing writes so
// a broadcast frame is never split across two WriteMessage calls.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsConn) Shutdown() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}

// Handler upgrades the HTTP request to a WebSocket connection,
// registers it as a spectator, and blocks (discarding any client
// frames — spectators have nothing to say) until the socket closes, at
// which point it deregisters itself.
func Handler(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print(err)
			return
		}

		ws := &wsConn{conn: conn}
		game.AddSpectator(ws)
		defer game.RemoveSpectator(ws)
		defer conn.Close()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
