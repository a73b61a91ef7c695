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
	"slices"
)

const (
	PoolNameLength = 8

	// lowercase only, generated trees must stay collision free on
	// case-insensitive filesystems
	poolAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// largest multiple of len(poolAlphabet) that fits in a byte
	poolByteLimit = 256 - 256%len(poolAlphabet)
)

// Pool is a pre-generated, globally deduplicated set of short names. Every
// name is handed out once, whatever the scope.
type Pool struct {
	names []string
}

// GeneratePool draws short names in batches, sorting and compacting after
// each batch, until size distinct names have been accumulated.
func GeneratePool(source io.Reader, size int) (*Pool, error) {
	if size < 0 {
		size = 0
	}
	rd := buffered(source)

	names := make([]string, 0, size)
	for len(names) < size {
		missing := size - len(names)
		for i := 0; i < missing; i++ {
			name, err := drawShortName(rd)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		slices.Sort(names)
		names = slices.Compact(names)
	}

	return &Pool{names: names}, nil
}

func drawShortName(rd *bufio.Reader) (string, error) {
	var buf [PoolNameLength]byte
	for i := 0; i < len(buf); {
		b, err := rd.ReadByte()
		if err != nil {
			return "", err
		}
		if int(b) >= poolByteLimit {
			continue
		}
		buf[i] = poolAlphabet[int(b)%len(poolAlphabet)]
		i++
	}
	return string(buf[:]), nil
}

func (p *Pool) Next(scope Scope) (string, error) {
	if len(p.names) == 0 {
		return "", ErrPoolExhausted
	}
	name := p.names[len(p.names)-1]
	p.names = p.names[:len(p.names)-1]
	return name, nil
}

func (p *Pool) EnterDirectory() {
}

func (p *Pool) Remaining() int {
	return len(p.names)
}
