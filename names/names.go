/*
 * Copyright (c) 2024 Gilles Chehade <gilles@poolp.org>
 *
 * Permission to use, copy, modify, and distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package names supplies unique, path-safe identifiers for the directories
// and files of a generated tree.
package names

import (
	"bufio"
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/rand"
)

var (
	ErrUnknownStrategy = errors.New("unknown name strategy")
	ErrPoolExhausted   = errors.New("name pool exhausted")
)

const (
	StrategyUUID = "uuid"
	StrategyPool = "pool"
)

type Scope int

const (
	// DirectoryScope names are unique across the whole run.
	DirectoryScope Scope = iota
	// FileScope names are unique within the current directory.
	FileScope
)

func (s Scope) String() string {
	switch s {
	case DirectoryScope:
		return "directory"
	case FileScope:
		return "file"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

type Supplier interface {
	// Next returns a name that was never returned before within scope.
	Next(scope Scope) (string, error)

	// EnterDirectory starts a new file scope.
	EnterDirectory()
}

func Strategies() []string {
	return []string{StrategyUUID, StrategyPool}
}

// ValidateStrategy returns ErrUnknownStrategy unless strategy is one of
// Strategies.
func ValidateStrategy(strategy string) error {
	for _, known := range Strategies() {
		if strategy == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// New builds the supplier for strategy. size is only used by the pool
// strategy and must cover every name consumed over the run.
func New(strategy string, source io.Reader, size int) (Supplier, error) {
	switch strategy {
	case StrategyUUID:
		return NewUUIDSupplier(source), nil
	case StrategyPool:
		return GeneratePool(source, size)
	default:
		return nil, ValidateStrategy(strategy)
	}
}

// NewSource returns the random stream names are drawn from. A zero seed
// selects system entropy, anything else a deterministic stream.
func NewSource(seed int64) io.Reader {
	if seed == 0 {
		return crand.Reader
	}
	return NewSeededSource(seed)
}

func NewSeededSource(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}

func buffered(source io.Reader) *bufio.Reader {
	if rd, ok := source.(*bufio.Reader); ok {
		return rd
	}
	return bufio.NewReaderSize(source, 64*1024)
}
