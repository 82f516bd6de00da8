// Asynchronous event logger
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

// Package logging is a single consumer of an asynchronous message stream.
// Every event the server wants to report is sent on a buffered channel
// and pretty-printed by one goroutine, so callers never do the I/O
// themselves; a send blocks only while the 64-message buffer is full.
package logging

import (
	"fmt"
	"log"
)

type kind int

const (
	kindLogin kind = iota
	kindLogout
	kindAccepted
	kindMessage
	kindGlobalMessage
	kindSession
	kindError
)

type message struct {
	kind kind
	text string
	err  error
}

// Logger drains a single channel of events in its own goroutine.
type Logger struct {
	ch chan message
}

// New starts the consumer goroutine and returns a ready-to-use Logger.
func New() *Logger {
	l := &Logger{ch: make(chan message, 64)}
	go l.run()
	return l
}

func (l *Logger) run() {
	for m := range l.ch {
		switch m.kind {
		case kindError:
			log.Printf("[error] %v", m.err)
		default:
			log.Print(m.text)
		}
	}
}

func (l *Logger) send(m message) {
	if l == nil {
		return
	}
	l.ch <- m
}

func (l *Logger) Login(username string) {
	l.send(message{kind: kindLogin, text: fmt.Sprintf("%s s'est connecté", username)})
}

func (l *Logger) Logout(username string) {
	l.send(message{kind: kindLogout, text: fmt.Sprintf("%s s'est déconnecté", username)})
}

func (l *Logger) Accepted(username, word string) {
	l.send(message{kind: kindAccepted, text: fmt.Sprintf("%s a trouvé %q", username, word)})
}

func (l *Logger) MessageSent(sender, receiver, msg string) {
	l.send(message{kind: kindMessage, text: fmt.Sprintf("%s -> %s: %s", sender, receiver, msg)})
}

func (l *Logger) GlobalMessage(sender, msg string) {
	l.send(message{kind: kindGlobalMessage, text: fmt.Sprintf("%s (tous): %s", sender, msg)})
}

func (l *Logger) SessionStart() {
	l.send(message{kind: kindSession, text: "début de session"})
}

func (l *Logger) SessionEnd() {
	l.send(message{kind: kindSession, text: "fin de session"})
}

func (l *Logger) Error(err error) {
	l.send(message{kind: kindError, err: err})
}

// Close stops accepting new messages. The consumer goroutine drains
// whatever remains buffered, then exits.
func (l *Logger) Close() {
	close(l.ch)
}
