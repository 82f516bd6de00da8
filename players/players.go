// Connection registry
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

// Package players maps usernames to their connection handle and drives
// directed and broadcast message delivery. Players is not safe for
// concurrent use; callers (the game façade) are expected to guard it with
// their own lock.
package players

import (
	"fmt"

	mots "go-mots"
)

// Conn is anything a Players registry can write a response line to and
// later shut down: a real TCP socket, a WebSocket, or a test double.
type Conn interface {
	Write(p []byte) (int, error)
	Shutdown() error
}

// Players owns the write-side handle of every logged-in user, plus a
// separate fan-out list of read-only spectator taps.
type Players struct {
	byName     map[string]Conn
	spectators []Conn
}

func New() *Players {
	return &Players{byName: make(map[string]Conn)}
}

// Login fails with ExistingUser if name is already registered; otherwise
// it broadcasts CONNECTE/<name>/\n to the current users, then inserts the
// newcomer.
func (p *Players) Login(name string, conn Conn) error {
	if _, ok := p.byName[name]; ok {
		return mots.ErrExistingUser(name)
	}
	p.Broadcast(fmt.Sprintf("CONNECTE/%s/\n", name))
	p.byName[name] = conn
	return nil
}

// Logout fails with NonExistingUser if name is absent; otherwise removes
// it and broadcasts DECONNEXION/<name>/ (no trailing newline) to the
// remaining users.
func (p *Players) Logout(name string) error {
	if _, ok := p.byName[name]; !ok {
		return mots.ErrNonExistingUser(name)
	}
	delete(p.byName, name)
	p.Broadcast(fmt.Sprintf("DECONNEXION/%s/", name))
	return nil
}

func (p *Players) IsConnected(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// Users returns the registered usernames; iteration order is unspecified.
func (p *Players) Users() []string {
	users := make([]string, 0, len(p.byName))
	for u := range p.byName {
		users = append(users, u)
	}
	return users
}

// Broadcast writes message to every logged-in user and every registered
// spectator. Per-connection write errors do not abort the fan-out and do
// not mutate the registry; they are collected into the returned slice and
// are not logged here. The game façade ignores that slice, so these
// errors are not logged at all.
func (p *Players) Broadcast(message string) []error {
	var errs []error
	for _, conn := range p.byName {
		if _, err := conn.Write([]byte(message)); err != nil {
			errs = append(errs, err)
		}
	}
	for _, conn := range p.spectators {
		if _, err := conn.Write([]byte(message)); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Chat writes PRECEPTION/<msg>/<sender>/\n to receiver only. Either party
// being unknown is reported as InvalidChat wrapping the underlying
// NonExistingUser.
func (p *Players) Chat(sender, receiver, msg string) error {
	if _, ok := p.byName[sender]; !ok {
		return mots.ErrInvalidChat(sender, mots.ErrNonExistingUser(sender))
	}
	conn, ok := p.byName[receiver]
	if !ok {
		return mots.ErrInvalidChat(receiver, mots.ErrNonExistingUser(receiver))
	}
	_, err := conn.Write([]byte(fmt.Sprintf("PRECEPTION/%s/%s/\n", msg, sender)))
	return err
}

// AddSpectator registers a read-only broadcast tap. Spectators never
// appear in Users() and can never be a Chat sender or receiver.
func (p *Players) AddSpectator(conn Conn) {
	p.spectators = append(p.spectators, conn)
}

// RemoveSpectator unregisters a previously added spectator tap.
func (p *Players) RemoveSpectator(conn Conn) {
	for i, c := range p.spectators {
		if c == conn {
			p.spectators = append(p.spectators[:i], p.spectators[i+1:]...)
			return
		}
	}
}
