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

package names

import (
	"bufio"
	"io"

	"github.com/google/uuid"
)

// UUIDSupplier draws random v4 UUIDs and rejects any already issued in the
// requested scope. The file scope resets on EnterDirectory.
type UUIDSupplier struct {
	rd    *bufio.Reader
	dirs  map[string]struct{}
	files map[string]struct{}
	draws uint64
}

func NewUUIDSupplier(source io.Reader) *UUIDSupplier {
	return &UUIDSupplier{
		rd:    buffered(source),
		dirs:  make(map[string]struct{}),
		files: make(map[string]struct{}),
	}
}

func (s *UUIDSupplier) Next(scope Scope) (string, error) {
	issued := s.files
	if scope == DirectoryScope {
		issued = s.dirs
	}

	for {
		u, err := uuid.NewRandomFromReader(s.rd)
		if err != nil {
			return "", err
		}
		s.draws++

		name := u.String()
		if _, exists := issued[name]; exists {
			continue
		}
		issued[name] = struct{}{}
		return name, nil
	}
}

func (s *UUIDSupplier) EnterDirectory() {
	s.files = make(map[string]struct{})
}

// Draws is the number of candidates drawn so far, rejected ones included.
func (s *UUIDSupplier) Draws() uint64 {
	return s.draws
}
