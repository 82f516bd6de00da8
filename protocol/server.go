// TCP listener
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
	"fmt"
	"log"
	"net"

	mots "go-mots"
	"go-mots/logging"
)

// Listen binds TCP on the given port and hands each accepted connection
// off to its own goroutine. It returns once the listener is bound;
// Accept runs in the background for as long as the process lives.
func Listen(port int, ctl Controller, logger *logging.Logger) (net.Listener, error) {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mots.Debug.Printf("Listening on TCP %s", addr)
	go acceptLoop(ln, ctl, logger)
	return ln, nil
}

func acceptLoop(ln net.Listener, ctl Controller, logger *logging.Logger) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Print(err)
			return
		}
		mots.Debug.Printf("New connection from %s", conn.RemoteAddr())
		go handleConnection(ctl, logger, newNetConn(conn), conn)
	}
}
