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

package config

import (
	"flag"
	"os"

	"github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands"
	"github.com/PlakarLabs/defendertest/cmd/defendertest/utils"
	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
)

func init() {
	subcommands.Register("config", cmd_config)
}

// cmd_config prints the effective defaults, in a form usable as -config file.
func cmd_config(ctx *context.Context, cfg *config.Configuration, args []string) int {
	flags := flag.NewFlagSet("config", flag.ExitOnError)
	flags.Parse(args)

	logger := ctx.GetLogger()
	progname := utils.ProgramName(flag.CommandLine.Name())
	if flags.NArg() != 0 {
		logger.Error("%s: config: too many parameters", progname)
		return 1
	}

	data, err := cfg.Marshal()
	if err != nil {
		logger.Error("%s: config: %s", progname, err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}
