// Per-connection request loop
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

package protocol

import (
	"bufio"
	"io"

	mots "go-mots"
	"go-mots/logging"
	"go-mots/players"
)

// Controller is the subset of the game façade a connection dispatches
// onto. It is an interface so the request loop can be tested without a
// full Game/Board/Players/Dict stack.
type Controller interface {
	Login(username string, conn players.Conn) error
	Logout(username string) error
	Found(username, word, trajectory string) (bool, error)
	Chat(sender, receiver, message string) error
	ChatAll(message string) error
	IsConnected(username string) bool
}

// handleConnection reads exactly one CONNEXION line to establish a
// username, then dispatches every subsequent line through ctl until EOF
// or a read error, forcing a logout if the user is still registered.
func handleConnection(ctl Controller, log *logging.Logger, conn *netConn, r io.Reader) {
	reader := bufio.NewReader(r)

	username, err := connect(ctl, log, conn, reader)
	if err != nil {
		log.Error(err)
		conn.Shutdown()
		return
	}

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			mots.Debug.Print(username, " < ", line)
			dispatch(ctl, log, conn, username, line)
		}
		if err != nil {
			break
		}
	}

	mots.Debug.Print("Closed connection to ", username)
	if ctl.IsConnected(username) {
		if err := ctl.Logout(username); err != nil {
			log.Error(err)
		}
	}
}

// connect reads the mandatory first request line; anything but a
// well-formed CONNEXION is an UnauthorizedRequest and the connection is
// rejected before any game state is touched.
func connect(ctl Controller, log *logging.Logger, conn *netConn, reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", mots.ErrUnauthorizedRequest(line)
	}

	req, err := ParseRequest(line)
	if err != nil || req.Kind != Login {
		return "", mots.ErrUnauthorizedRequest(line)
	}

	if err := ctl.Login(req.Username, conn); err != nil {
		return "", err
	}
	log.Login(req.Username)
	return req.Username, nil
}

// dispatch parses and executes a single request line for an already
// logged-in connection. Failures are logged; the connection stays open
// so the client can keep submitting requests.
func dispatch(ctl Controller, log *logging.Logger, conn *netConn, username, line string) {
	req, err := ParseRequest(line)
	if err != nil {
		log.Error(err)
		return
	}

	switch req.Kind {
	case Login:
		// A second CONNEXION on an already-established connection is
		// not part of the grammar for this state; treat it as an
		// unauthorized request and ignore it.
		log.Error(mots.ErrUnauthorizedRequest(line))
	case Logout:
		if err := ctl.Logout(req.Username); err != nil {
			log.Error(err)
			return
		}
		log.Logout(req.Username)
		conn.Shutdown()
	case Found:
		ok, err := ctl.Found(username, req.Word, req.Trajectory)
		if err != nil {
			reply := MInvalide(err.Error())
			conn.Write([]byte(reply))
			mots.Debug.Print(username, " > ", reply)
			log.Error(err)
			return
		}
		if ok {
			reply := MValide(req.Word)
			conn.Write([]byte(reply))
			mots.Debug.Print(username, " > ", reply)
		}
		log.Accepted(username, req.Word)
	case Chat:
		if err := ctl.Chat(username, req.Recipient, req.Message); err != nil {
			log.Error(err)
			return
		}
		log.MessageSent(username, req.Recipient, req.Message)
	case ChatAll:
		if err := ctl.ChatAll(req.Message); err != nil {
			log.Error(err)
			return
		}
		log.GlobalMessage(username, req.Message)
	}
}
