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
	"fmt"
	"io"
	"time"

	"github.com/PlakarLabs/defendertest/plan"
	"github.com/PlakarLabs/defendertest/tree"
	"github.com/dustin/go-humanize"
)

type Summary struct {
	Target   plan.Target
	Strategy string
	Seed     int64
	WorkDir  string

	// Chain lists the generated directories, outermost first.
	Chain []string

	// Inodes counts the files the run ensured exist, whether it created them
	// or found them already present.
	Inodes uint64
	Stats  tree.Stats

	PoolSize       int
	NameGeneration time.Duration

	StartedAt time.Time
	Elapsed   time.Duration
}

func (s *Summary) Directories() uint64 {
	return uint64(len(s.Chain))
}

func (s *Summary) PerInode() time.Duration {
	if s.Inodes == 0 {
		return 0
	}
	return time.Duration(uint64(s.Elapsed) / s.Inodes)
}

// Report prints the end of run summary.
func (s *Summary) Report(w io.Writer) {
	if s.PoolSize != 0 {
		fmt.Fprintf(w, "Name generation: %s (%s names)\n",
			HumanDuration(s.NameGeneration), humanize.Comma(int64(s.PoolSize)))
	}
	fmt.Fprintf(w, "Total inodes created: %s\n", humanize.Comma(int64(s.Inodes)))
	fmt.Fprintf(w, "Elapsed time: %s\n", HumanDuration(s.Elapsed))
	fmt.Fprintf(w, "Time per inode: %s\n", humanize.SIWithDigits(s.PerInode().Seconds(), 1, "s"))
}

func HumanDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
