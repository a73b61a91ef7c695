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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/events"
	"github.com/PlakarLabs/defendertest/names"
	"github.com/PlakarLabs/defendertest/profiler"
)

const (
	DirectoryMode os.FileMode = 0755
	FileMode      os.FileMode = 0644
)

// every generated file holds this single byte
var inodeContent = []byte{'X'}

type Stats struct {
	Directories        uint64
	DirectoriesSkipped uint64
	Files              uint64
	FilesSkipped       uint64
}

type Builder struct {
	ctx   *context.Context
	names names.Supplier
	stats Stats
}

func NewBuilder(ctx *context.Context, supplier names.Supplier) *Builder {
	return &Builder{
		ctx:   ctx,
		names: supplier,
	}
}

// ExtendAndFill creates one directory below current and fills it with count
// single-byte files. Entries that already exist are left untouched. It
// returns the path of the new directory so calls can be chained.
func (b *Builder) ExtendAndFill(current string, count uint64) (string, error) {
	t0 := time.Now()
	defer profiler.Since("tree.level", t0)

	name, err := b.names.Next(names.DirectoryScope)
	if err != nil {
		return "", fmt.Errorf("could not name a directory below %s: %w", current, err)
	}

	dir := filepath.Join(current, name)
	created, err := Mkdir(b.ctx, dir)
	if err != nil {
		return "", err
	}
	if created {
		b.stats.Directories++
	} else {
		b.stats.DirectoriesSkipped++
	}

	b.names.EnterDirectory()
	for i := uint64(0); i < count; i++ {
		name, err := b.names.Next(names.FileScope)
		if err != nil {
			return "", fmt.Errorf("could not name a file in %s: %w", dir, err)
		}
		created, err := CreateInode(b.ctx, filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		if created {
			b.stats.Files++
		} else {
			b.stats.FilesSkipped++
		}
	}

	return dir, nil
}

func (b *Builder) Stats() Stats {
	return b.stats
}

// Mkdir creates pathname unless an entry already exists there, and reports
// whether it did.
func Mkdir(ctx *context.Context, pathname string) (bool, error) {
	t0 := time.Now()
	defer profiler.Since("tree.mkdir", t0)

	if _, err := os.Lstat(pathname); err == nil {
		ctx.GetLogger().Trace("tree", "%s: directory exists, skipped", pathname)
		ctx.Events().Send(events.DirectoryExistsEvent(pathname))
		return false, nil
	}

	if err := os.Mkdir(pathname, DirectoryMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			ctx.Events().Send(events.DirectoryExistsEvent(pathname))
			return false, nil
		}
		ctx.Events().Send(events.ErrorEvent(pathname, err.Error()))
		return false, &DirectoryCreationError{Path: pathname, Err: err}
	}

	ctx.GetLogger().Trace("tree", "%s: directory created", pathname)
	ctx.Events().Send(events.DirectoryCreatedEvent(pathname))
	return true, nil
}

// CreateInode creates pathname holding a single byte unless an entry already
// exists there, and reports whether it did. Existing entries are never
// overwritten.
func CreateInode(ctx *context.Context, pathname string) (bool, error) {
	t0 := time.Now()
	defer profiler.Since("tree.file", t0)

	if _, err := os.Lstat(pathname); err == nil {
		ctx.GetLogger().Trace("tree", "%s: file exists, skipped", pathname)
		ctx.Events().Send(events.FileExistsEvent(pathname))
		return false, nil
	}

	fp, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			ctx.Events().Send(events.FileExistsEvent(pathname))
			return false, nil
		}
		return false, inodeError(ctx, pathname, OpCreate, err)
	}

	if _, err := fp.Write(inodeContent); err != nil {
		fp.Close()
		return false, inodeError(ctx, pathname, OpWrite, err)
	}
	if err := fp.Close(); err != nil {
		return false, inodeError(ctx, pathname, OpClose, err)
	}

	ctx.Events().Send(events.FileCreatedEvent(pathname))
	return true, nil
}

func inodeError(ctx *context.Context, pathname string, op string, err error) error {
	ctx.Events().Send(events.ErrorEvent(pathname, err.Error()))
	return &InodeCreationError{Path: pathname, Op: op, Err: err}
}
