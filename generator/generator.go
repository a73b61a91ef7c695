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

package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/events"
	"github.com/PlakarLabs/defendertest/names"
	"github.com/PlakarLabs/defendertest/plan"
	"github.com/PlakarLabs/defendertest/profiler"
	"github.com/PlakarLabs/defendertest/tree"
)

// WorkDirName is the directory created below the root to hold every
// generated entry.
const WorkDirName = "defendertest_data"

var ErrNotDirectory = errors.New("not a directory")

type InvalidRootPathError struct {
	Path string
	Err  error
}

func (e *InvalidRootPathError) Error() string {
	return fmt.Sprintf("invalid root path %s: %s", e.Path, e.Err)
}

func (e *InvalidRootPathError) Unwrap() error {
	return e.Err
}

type State int

const (
	Validating State = iota
	Generating
	Building
	Reporting
	Done
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Generating:
		return "generating"
	case Building:
		return "building"
	case Reporting:
		return "reporting"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Options struct {
	Strategy string
	Seed     int64

	// Source overrides the random stream derived from Seed.
	Source io.Reader

	// Pace is slept once before each directory, for display purposes only.
	Pace time.Duration
}

type Generator struct {
	ctx    *context.Context
	target plan.Target
	opts   Options
	state  State
}

func New(ctx *context.Context, target plan.Target, opts Options) *Generator {
	if opts.Strategy == "" {
		opts.Strategy = names.StrategyUUID
	}
	return &Generator{
		ctx:    ctx,
		target: target,
		opts:   opts,
		state:  Validating,
	}
}

func (g *Generator) State() State {
	return g.state
}

func (g *Generator) enter(state State) {
	g.state = state
	g.ctx.GetLogger().Trace("generator", "entering %s", state)
	g.ctx.Events().Send(events.PhaseEvent(state.String()))
}

// Run drives the whole generation and stops at the first error. Whatever was
// written before the error is left on disk.
func (g *Generator) Run() (*Summary, error) {
	logger := g.ctx.GetLogger()

	g.ctx.Events().Send(events.StartEvent())
	g.enter(Validating)

	workdir, err := g.validate()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Target:   g.target,
		Strategy: g.opts.Strategy,
		Seed:     g.opts.Seed,
		WorkDir:  workdir,
		Chain:    make([]string, 0, g.target.Levels()),
	}

	supplier, err := g.supplier(summary)
	if err != nil {
		return nil, err
	}

	if remainder := g.target.Remainder(); remainder != 0 {
		msg := fmt.Sprintf("%d inodes do not divide evenly over %d levels and will not be created",
			remainder, g.target.Levels())
		logger.Warn("%s", msg)
		g.ctx.Events().Send(events.WarningEvent(msg))
	}

	g.enter(Building)
	summary.StartedAt = time.Now()

	builder := tree.NewBuilder(g.ctx, supplier)
	perDirectory := g.target.PerDirectory()
	cursor := workdir
	for level := uint64(1); level <= g.target.Levels(); level++ {
		if g.opts.Pace > 0 {
			time.Sleep(g.opts.Pace)
		}

		cursor, err = builder.ExtendAndFill(cursor, perDirectory)
		if err != nil {
			return nil, err
		}
		summary.Chain = append(summary.Chain, cursor)
		summary.Inodes += perDirectory

		logger.Trace("generator", "level %d/%d: %s", level, g.target.Levels(), cursor)
		g.ctx.Events().Send(events.LevelDoneEvent(level, cursor, summary.Inodes))
	}
	summary.Elapsed = time.Since(summary.StartedAt)

	g.enter(Reporting)
	summary.Stats = builder.Stats()
	logger.Info("%d directories and %d files created, %d directories and %d files already present",
		summary.Stats.Directories, summary.Stats.Files,
		summary.Stats.DirectoriesSkipped, summary.Stats.FilesSkipped)

	g.enter(Done)
	g.ctx.Events().Send(events.DoneEvent())
	return summary, nil
}

func (g *Generator) validate() (string, error) {
	if err := g.target.Validate(); err != nil {
		return "", err
	}
	if err := names.ValidateStrategy(g.opts.Strategy); err != nil {
		return "", err
	}

	info, err := os.Stat(g.target.Root)
	if err != nil {
		return "", &InvalidRootPathError{Path: g.target.Root, Err: err}
	}
	if !info.IsDir() {
		return "", &InvalidRootPathError{Path: g.target.Root, Err: ErrNotDirectory}
	}

	workdir := filepath.Join(g.target.Root, WorkDirName)
	if _, err := tree.Mkdir(g.ctx, workdir); err != nil {
		return "", err
	}
	return workdir, nil
}

func (g *Generator) supplier(summary *Summary) (names.Supplier, error) {
	source := g.opts.Source
	if source == nil {
		source = names.NewSource(g.opts.Seed)
	}

	if g.opts.Strategy != names.StrategyPool {
		return names.New(g.opts.Strategy, source, 0)
	}

	g.enter(Generating)
	size := int(g.target.Names())
	t0 := time.Now()
	supplier, err := names.New(g.opts.Strategy, source, size)
	if err != nil {
		return nil, err
	}
	summary.NameGeneration = time.Since(t0)
	summary.PoolSize = size
	profiler.RecordEvent("names.pool", summary.NameGeneration)

	g.ctx.GetLogger().Trace("names", "generated %d names in %s", size, summary.NameGeneration)
	g.ctx.Events().Send(events.PoolGeneratedEvent(size, summary.NameGeneration))
	return supplier, nil
}
