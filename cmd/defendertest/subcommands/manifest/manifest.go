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

package manifest

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands"
	"github.com/PlakarLabs/defendertest/cmd/defendertest/utils"
	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/manifest"
	"github.com/dustin/go-humanize"
)

func init() {
	subcommands.Register("manifest", cmd_manifest)
}

func cmd_manifest(ctx *context.Context, _ *config.Configuration, args []string) int {
	var opt_chain bool

	flags := flag.NewFlagSet("manifest", flag.ExitOnError)
	flags.BoolVar(&opt_chain, "chain", false, "list every directory of the chain")
	flags.Parse(args)

	logger := ctx.GetLogger()
	progname := utils.ProgramName(flag.CommandLine.Name())
	if flags.NArg() == 0 {
		logger.Error("%s: manifest: missing manifest file", progname)
		return 1
	}

	status := 0
	for _, pathname := range flags.Args() {
		m, err := manifest.Load(pathname)
		if err != nil {
			logger.Error("%s: manifest: %s: %s", progname, pathname, err)
			status = 1
			continue
		}
		logger.Trace("manifest", "%s: run %s", pathname, m.RunID)
		display(os.Stdout, m, opt_chain)
	}
	return status
}

func display(w io.Writer, m *manifest.Manifest, chain bool) {
	fmt.Fprintf(w, "Run: %s\n", m.RunID)
	fmt.Fprintf(w, "Version: %s\n", m.Version)
	fmt.Fprintf(w, "CreationTime: %s\n", utils.HumanTime(m.CreationTime))
	fmt.Fprintf(w, "CreationDuration: %s\n", utils.HumanDuration(m.CreationDuration))

	fmt.Fprintf(w, "Hostname: %s\n", m.Hostname)
	fmt.Fprintf(w, "Username: %s\n", m.Username)
	fmt.Fprintf(w, "OperatingSystem: %s\n", m.OperatingSystem)
	fmt.Fprintf(w, "Architecture: %s\n", m.Architecture)
	fmt.Fprintf(w, "NumCPU: %d\n", m.NumCPU)
	fmt.Fprintf(w, "MachineID: %s\n", m.MachineID)
	fmt.Fprintf(w, "ProcessID: %d\n", m.ProcessID)
	fmt.Fprintf(w, "Client: %s\n", m.Client)
	fmt.Fprintf(w, "CommandLine: %s\n", m.CommandLine)

	fmt.Fprintf(w, "Root: %s\n", m.Root)
	fmt.Fprintf(w, "WorkDir: %s\n", m.WorkDir)
	fmt.Fprintf(w, "TotalInodes: %s\n", humanize.Comma(int64(m.TotalInodes)))
	fmt.Fprintf(w, "Depth: %d\n", m.Depth)
	fmt.Fprintf(w, "PerDirectory: %s\n", humanize.Comma(int64(m.PerDirectory)))

	fmt.Fprintf(w, "Strategy: %s\n", m.Strategy)
	fmt.Fprintf(w, "Seed: %d\n", m.Seed)
	if m.PoolSize != 0 {
		fmt.Fprintf(w, "PoolSize: %s\n", humanize.Comma(int64(m.PoolSize)))
		fmt.Fprintf(w, "NameGeneration: %s\n", utils.HumanDuration(m.NameGeneration))
	}

	fmt.Fprintf(w, "Directories: %d created, %d present\n", m.DirectoriesCount, m.DirectoriesSkippedCount)
	fmt.Fprintf(w, "Files: %s created, %s present\n",
		humanize.Comma(int64(m.FilesCount)), humanize.Comma(int64(m.FilesSkippedCount)))

	if chain {
		for i, pathname := range m.Chain {
			fmt.Fprintf(w, "Chain[%d]: %s\n", i, pathname)
		}
	}
}
