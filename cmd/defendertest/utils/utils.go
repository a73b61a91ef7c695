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

package utils

import (
	"path/filepath"
	"time"

	"github.com/PlakarLabs/defendertest/generator"
	"github.com/dustin/go-humanize"
)

const VERSION = "v0.1.0"

func GetVersion() string {
	return VERSION
}

func GetClient() string {
	return "defendertest/" + VERSION
}

// ProgramName is the short name used as prefix in error messages.
func ProgramName(argv0 string) string {
	if argv0 == "" {
		return "defendertest"
	}
	return filepath.Base(argv0)
}

func HumanTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339) + " (" + humanize.Time(t) + ")"
}

func HumanDuration(d time.Duration) string {
	return generator.HumanDuration(d)
}
