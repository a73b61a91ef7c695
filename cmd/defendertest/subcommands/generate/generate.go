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

package generate

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands"
	"github.com/PlakarLabs/defendertest/cmd/defendertest/utils"
	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/generator"
	"github.com/PlakarLabs/defendertest/manifest"
	"github.com/PlakarLabs/defendertest/plan"
	"golang.org/x/term"
)

func init() {
	subcommands.Register("generate", cmd_generate)
}

func cmd_generate(ctx *context.Context, cfg *config.Configuration, args []string) int {
	var opt_path string
	var opt_totalInodes uint64
	var opt_depth uint64
	var opt_names string
	var opt_seed int64
	var opt_manifest string
	var opt_quiet bool

	logger := ctx.GetLogger()
	progname := utils.ProgramName(flag.CommandLine.Name())

	pace, err := cfg.PaceDuration()
	if err != nil {
		logger.Error("%s: generate: %s", progname, err)
		return 1
	}

	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	flags.StringVar(&opt_path, "path", cfg.Path, "path to create the test data at")
	flags.Uint64Var(&opt_totalInodes, "total-inodes", cfg.TotalInodes, "total number of 1B inodes to create")
	flags.Uint64Var(&opt_depth, "depth", cfg.Depth, "how deep to create subdirectories")
	flags.StringVar(&opt_names, "names", cfg.Names, "name strategy: uuid (per directory) or pool (pre-generated, global)")
	flags.Int64Var(&opt_seed, "seed", cfg.Seed, "seed for name generation, 0 for system entropy")
	flags.DurationVar(&pace, "pace", pace, "delay inserted before each directory")
	flags.StringVar(&opt_manifest, "manifest", "", "write a run manifest to this file")
	flags.BoolVar(&opt_quiet, "quiet", false, "suppress progress output")
	flags.Parse(args)

	switch flags.NArg() {
	case 0:
	case 1:
		if opt_path == "" {
			opt_path = flags.Arg(0)
			break
		}
		fallthrough
	default:
		logger.Error("%s: generate: too many parameters", progname)
		return 1
	}

	if opt_path == "" {
		logger.Error("%s: generate: missing -path", progname)
		flags.Usage()
		return 1
	}
	if !filepath.IsAbs(opt_path) && ctx.GetCWD() != "" {
		opt_path = filepath.Join(ctx.GetCWD(), opt_path)
	}

	target := plan.NewTarget(opt_path, opt_totalInodes, opt_depth)
	logger.Trace("generator", "target %s, strategy %s, seed %d", target, opt_names, opt_seed)

	interactive := !opt_quiet && term.IsTerminal(int(os.Stdout.Fd()))
	done := eventsProcessorStdio(ctx, target, opt_quiet, interactive)

	gen := generator.New(ctx, target, generator.Options{
		Strategy: opt_names,
		Seed:     opt_seed,
		Pace:     pace,
	})
	summary, err := gen.Run()

	ctx.Events().Close()
	<-done

	if err != nil {
		logger.Error("%s: generate: %s", progname, err)
		return 1
	}

	summary.Report(os.Stdout)

	if opt_manifest != "" {
		m := newManifest(ctx, summary)
		if err := m.Save(opt_manifest); err != nil {
			logger.Error("%s: generate: could not write manifest: %s", progname, err)
			return 1
		}
		logger.Info("manifest %x written to %s", m.GetShortID(), opt_manifest)
	}

	return 0
}

func newManifest(ctx *context.Context, summary *generator.Summary) *manifest.Manifest {
	m := manifest.New()
	m.CreationTime = summary.StartedAt
	m.CreationDuration = summary.Elapsed

	m.Hostname = ctx.GetHostname()
	m.Username = ctx.GetUsername()
	m.OperatingSystem = ctx.GetOperatingSystem()
	m.Architecture = ctx.GetArchitecture()
	m.NumCPU = ctx.GetNumCPU()
	m.MachineID = ctx.GetMachineID()
	m.ProcessID = ctx.GetProcessID()
	m.Client = utils.GetClient()
	m.CommandLine = ctx.GetCommandLine()

	m.Root = summary.Target.Root
	m.WorkDir = summary.WorkDir
	m.TotalInodes = summary.Target.TotalInodes
	m.Depth = summary.Target.Depth
	m.PerDirectory = summary.Target.PerDirectory()

	m.Strategy = summary.Strategy
	m.Seed = summary.Seed
	m.PoolSize = summary.PoolSize
	m.NameGeneration = summary.NameGeneration

	m.Chain = append(m.Chain, summary.Chain...)

	m.FilesCount = summary.Stats.Files
	m.FilesSkippedCount = summary.Stats.FilesSkipped
	m.DirectoriesCount = summary.Stats.Directories
	m.DirectoriesSkippedCount = summary.Stats.DirectoriesSkipped
	return m
}
