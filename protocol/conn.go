// Network connection wrapper
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
	"net"
	"sync"
)

// netConn wraps a net.Conn so it can be handed to the Players registry,
// which fans the same handle out to a broadcast loop and whatever
// per-connection reader owns it. Write is serialized so a broadcast and
// a direct reply never interleave their bytes on the wire.
type netConn struct {
	mu   sync.Mutex
	conn net.Conn
}

func newNetConn(c net.Conn) *netConn {
	return &netConn{conn: c}
}

func (n *netConn) Write(p []byte) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.conn.Write(p)
}

func (n *netConn) Shutdown() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.conn.Close()
}
