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

package tree

import (
	"fmt"
)

const (
	OpCreate = "create"
	OpWrite  = "write"
	OpClose  = "close"
)

type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create inode directory %s: %s", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// InodeCreationError reports which step of a file creation failed: OpCreate
// when the file could not be created, OpWrite or OpClose when its byte could
// not be persisted.
type InodeCreationError struct {
	Path string
	Op   string
	Err  error
}

func (e *InodeCreationError) Error() string {
	if e.Op == OpCreate {
		return fmt.Sprintf("failed to create inode file %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s inode file %s: %s", e.Op, e.Path, e.Err)
}

func (e *InodeCreationError) Unwrap() error {
	return e.Err
}
