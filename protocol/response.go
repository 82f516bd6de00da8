// Response formatting
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

import "fmt"

// These mirror the literal frames built ad hoc elsewhere (Board's
// welcome/bilan strings, Game's broadcasts); they live here too because
// the per-connection handler assembles a few of its own.

func MValide(word string) string {
	return fmt.Sprintf("MVALIDE/%s/\n", word)
}

func MInvalide(reason string) string {
	return fmt.Sprintf("MINVALIDE/%s/\n", reason)
}
