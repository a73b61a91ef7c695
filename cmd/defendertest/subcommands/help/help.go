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

package help

import (
	"embed"
	"flag"
	"fmt"

	"github.com/PlakarLabs/defendertest/cmd/defendertest/subcommands"
	"github.com/PlakarLabs/defendertest/cmd/defendertest/utils"
	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

//go:embed docs/*
var docs embed.FS

func init() {
	subcommands.Register("help", cmd_help)
}

func cmd_help(ctx *context.Context, _ *config.Configuration, args []string) int {
	var opt_style string
	flags := flag.NewFlagSet("help", flag.ExitOnError)
	flags.StringVar(&opt_style, "style", "dracula", "style to use")
	flags.Parse(args)

	logger := ctx.GetLogger()
	if len(flags.Args()) == 0 {
		logger.Stderr("available commands:")
		for _, command := range subcommands.List() {
			logger.Stderr("  %s", command)
		}
		return 0
	}

	out, err := render(flags.Arg(0), opt_style)
	if err != nil {
		logger.Error("%s: help: %s", utils.ProgramName(flag.CommandLine.Name()), err)
		return 1
	}
	fmt.Print(out)

	return 0
}

func render(command string, style string) (string, error) {
	content, err := docs.ReadFile(fmt.Sprintf("docs/%s.md", command))
	if err != nil {
		return "", fmt.Errorf("unknown command: %s", command)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(termenv.TrueColor),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.RenderBytes(content)
	if err != nil {
		return "", fmt.Errorf("failed to render: %w", err)
	}
	return string(out), nil
}
