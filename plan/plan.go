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

package plan

import (
	"errors"
	"fmt"
)

const (
	DefaultTotalInodes uint64 = 1000000
	DefaultDepth       uint64 = 20
)

var (
	ErrInvalidDepth = errors.New("depth must be at least 1")
	ErrEmptyLevel   = errors.New("total inodes is smaller than depth, no file would be created")
)

// Target is what a run was asked to produce. It is never modified once the
// run starts.
type Target struct {
	Root        string
	TotalInodes uint64
	Depth       uint64
}

func NewTarget(root string, totalInodes uint64, depth uint64) Target {
	return Target{Root: root, TotalInodes: totalInodes, Depth: depth}
}

func (t Target) Validate() error {
	if t.Depth < 1 {
		return ErrInvalidDepth
	}
	if t.TotalInodes/t.Depth == 0 {
		return fmt.Errorf("%w: total=%d depth=%d", ErrEmptyLevel, t.TotalInodes, t.Depth)
	}
	return nil
}

// Levels is the number of chained directories created below the working
// directory.
func (t Target) Levels() uint64 {
	return t.Depth
}

// PerDirectory is the number of files created in each level.
func (t Target) PerDirectory() uint64 {
	if t.Depth == 0 {
		return 0
	}
	return t.TotalInodes / t.Depth
}

// Files is the number of files the run actually creates. It is lower than
// TotalInodes by Remainder when the budget does not divide evenly.
func (t Target) Files() uint64 {
	return t.Levels() * t.PerDirectory()
}

func (t Target) Remainder() uint64 {
	return t.TotalInodes - t.Files()
}

// Names is the number of names consumed over a run: one per level plus one
// per file.
func (t Target) Names() uint64 {
	return t.Levels() + t.Files()
}

func (t Target) String() string {
	return fmt.Sprintf("%s: %d inodes over %d levels", t.Root, t.TotalInodes, t.Depth)
}
