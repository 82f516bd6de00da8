// File-backed dictionary implementation
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

package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LocalDict loads a newline-separated word list once at construction and
// answers membership queries against a normalized, lowercased set.
type LocalDict struct {
	words map[string]struct{}
}

// foldDiacritics is the idiomatic Go replacement for the Rust unidecode
// crate used by the original implementation: decompose to NFD, drop
// combining marks, then the caller lowercases.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(word string) string {
	folded, _, err := transform.String(foldDiacritics, word)
	if err != nil {
		folded = word
	}
	return strings.ToLower(folded)
}

// NewLocalDict opens path and builds the membership set. A missing or
// unreadable file is fatal at startup, matching the reference
// implementation's own expect()-or-panic behavior.
func NewLocalDict(path string) (*LocalDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dictionary file %s: %w", path, err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words[normalize(scanner.Text())] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error while reading dictionary %s: %w", path, err)
	}

	return &LocalDict{words: words}, nil
}

func (d *LocalDict) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}
