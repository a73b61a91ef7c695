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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands"
	"github.com/PlakarLabs/defendertest/cmd/defendertest/utils"
	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/logging"
	"github.com/PlakarLabs/defendertest/profiler"
	"github.com/denisbrodbeck/machineid"

	_ "github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands/config"
	_ "github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands/generate"
	_ "github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands/help"
	_ "github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands/manifest"
	_ "github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands/version"
)

func main() {
	os.Exit(entryPoint())
}

func entryPoint() int {
	var opt_config string
	var opt_trace string
	var opt_info bool
	var opt_profiling bool

	progname := utils.ProgramName(flag.CommandLine.Name())

	flag.StringVar(&opt_config, "config", os.Getenv(config.ENV_CONFIG), "configuration file holding default parameters")
	flag.StringVar(&opt_trace, "trace", "", "display trace logs, comma-separated (all, config, context, generator, manifest, names, tree)")
	flag.BoolVar(&opt_info, "info", false, "display informational messages")
	flag.BoolVar(&opt_profiling, "profile", false, "display profiling logs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTIONS] COMMAND [COMMAND OPTIONS]...\n", progname)
		fmt.Fprintf(flag.CommandLine.Output(), "\nOPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nCOMMANDS:\n")
		for _, command := range subcommands.List() {
			fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", command)
		}
		fmt.Fprintf(flag.CommandLine.Output(), "\nFor more information on a command, use '%s help COMMAND'.\n", progname)
	}
	flag.Parse()

	ctx := context.NewContext()
	defer ctx.Close()

	logger := logging.NewLogger(os.Stdout, os.Stderr)
	if opt_info {
		logger.EnableInfo()
	}
	if opt_trace != "" {
		logger.EnableTrace(opt_trace)
	}
	ctx.SetLogger(logger)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	ctx.SetHostname(strings.ToLower(hostname))

	if currentUser, err := user.Current(); err == nil {
		ctx.SetUsername(currentUser.Username)
	}

	// not every platform exposes a machine identifier
	if machineID, err := machineid.ProtectedID("defendertest"); err == nil {
		ctx.SetMachineID(machineID)
	} else {
		logger.Trace("context", "no machine id: %s", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Error("%s: %s", progname, err)
		return 1
	}
	ctx.SetCWD(cwd)
	ctx.SetNumCPU(runtime.NumCPU())
	ctx.SetOperatingSystem(runtime.GOOS)
	ctx.SetArchitecture(runtime.GOARCH)
	ctx.SetProcessID(os.Getpid())
	ctx.SetCommandLine(strings.Join(os.Args, " "))

	cfg := config.Default()
	if opt_config != "" {
		cfg, err = config.Load(opt_config)
		if err != nil {
			logger.Error("%s: could not load configuration: %s", progname, err)
			return 1
		}
		logger.Trace("config", "loaded %s", opt_config)
	}

	if flag.NArg() == 0 {
		logger.Error("%s: a command must be provided", progname)
		flag.Usage()
		return 1
	}

	command, args := flag.Arg(0), flag.Args()[1:]
	status, err := subcommands.Execute(ctx, cfg, command, args)
	if err != nil {
		logger.Error("%s: %s", progname, err)
	}

	if opt_profiling {
		profiler.Display(logger)
	}

	return status
}
