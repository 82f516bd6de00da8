// Request grammar
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

// Package protocol implements the line-oriented, '/'-delimited TCP wire
// protocol: request parsing, response formatting, and the per-connection
// server loop wired on top of the game façade.
package protocol

import (
	"strings"

	mots "go-mots"
)

// Kind identifies which request verb a line carried.
type Kind int

const (
	Login Kind = iota
	Logout
	Found
	Chat
	ChatAll
)

// Request is a single parsed client line.
type Request struct {
	Kind      Kind
	Username  string // Login, Logout
	Word      string // Found
	Trajectory string // Found
	Recipient string // Chat
	Message   string // Chat, ChatAll
}

// ParseRequest splits a request line on '/' and dispatches on the first
// field. An unknown verb or wrong field count is always reported as
// BadRequest, with the raw line attached for logging.
func ParseRequest(line string) (Request, error) {
	fields := strings.Split(line, "/")
	if len(fields) == 0 {
		return Request{}, mots.ErrBadRequest(line)
	}

	var (
		req Request
		ok  bool
	)
	switch fields[0] {
	case "CONNEXION":
		req, ok = parseConnexion(fields)
	case "SORT":
		req, ok = parseSort(fields)
	case "TROUVE":
		req, ok = parseTrouve(fields)
	case "ENVOI":
		req, ok = parseEnvoi(fields)
	case "PENVOI":
		req, ok = parsePenvoi(fields)
	default:
		ok = false
	}
	if !ok {
		return Request{}, mots.ErrBadRequest(line)
	}
	return req, nil
}

// field returns the i-th field only if a '/' terminates it, so the empty
// remainder after the last '/' never counts as a field.
func field(fields []string, i int) (string, bool) {
	if i+1 >= len(fields) {
		return "", false
	}
	return fields[i], true
}

func parseConnexion(fields []string) (Request, bool) {
	username, ok := field(fields, 1)
	if !ok {
		return Request{}, false
	}
	return Request{Kind: Login, Username: username}, true
}

func parseSort(fields []string) (Request, bool) {
	username, ok := field(fields, 1)
	if !ok {
		return Request{}, false
	}
	return Request{Kind: Logout, Username: username}, true
}

func parseTrouve(fields []string) (Request, bool) {
	word, ok := field(fields, 1)
	if !ok {
		return Request{}, false
	}
	trajectory, ok := field(fields, 2)
	if !ok {
		return Request{}, false
	}
	return Request{Kind: Found, Word: word, Trajectory: trajectory}, true
}

func parseEnvoi(fields []string) (Request, bool) {
	message, ok := field(fields, 1)
	if !ok {
		return Request{}, false
	}
	return Request{Kind: ChatAll, Message: message}, true
}

func parsePenvoi(fields []string) (Request, bool) {
	recipient, ok := field(fields, 1)
	if !ok {
		return Request{}, false
	}
	message, ok := field(fields, 2)
	if !ok {
		return Request{}, false
	}
	return Request{Kind: Chat, Recipient: recipient, Message: message}, true
}
