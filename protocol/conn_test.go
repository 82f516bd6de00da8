// Network connection wrapper tests
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
	"io"
	"net"
	"testing"
)

func TestNetConnWriteAndShutdown(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	nc := newNetConn(server)

	done := make(chan []byte)
	go func() {
		buf := make([]byte, 5)
		io.ReadFull(client, buf)
		done <- buf
	}()

	if _, err := nc.Write([]byte("hello")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got := <-done
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}

	if err := nc.Shutdown(); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
}
