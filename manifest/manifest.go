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
	"os"
	"time"

	"github.com/PlakarLabs/defendertest/profiler"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const VERSION = "1.0.0"

// Manifest records how a tree was generated so the run can be identified
// and replayed with the same seed.
type Manifest struct {
	RunID            uuid.UUID
	Version          string
	CreationTime     time.Time
	CreationDuration time.Duration

	Hostname        string
	Username        string
	OperatingSystem string
	Architecture    string
	NumCPU          int
	MachineID       string
	ProcessID       int
	Client          string
	CommandLine     string

	Root         string
	WorkDir      string
	TotalInodes  uint64
	Depth        uint64
	PerDirectory uint64

	Strategy       string
	Seed           int64
	PoolSize       int
	NameGeneration time.Duration

	Chain []string

	FilesCount              uint64
	FilesSkippedCount       uint64
	DirectoriesCount        uint64
	DirectoriesSkippedCount uint64
}

func New() *Manifest {
	return &Manifest{
		RunID:        uuid.Must(uuid.NewRandom()),
		Version:      VERSION,
		CreationTime: time.Now(),
		Chain:        []string{},
	}
}

func NewFromBytes(serialized []byte) (*Manifest, error) {
	t0 := time.Now()
	defer profiler.Since("manifest.NewFromBytes", t0)

	var manifest Manifest
	if err := msgpack.Unmarshal(serialized, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (m *Manifest) Serialize() ([]byte, error) {
	t0 := time.Now()
	defer profiler.Since("manifest.Serialize", t0)

	return msgpack.Marshal(m)
}

func (m *Manifest) GetShortID() []byte {
	return m.RunID[:4]
}

// Inodes is the number of files present in the chain at the end of the run.
func (m *Manifest) Inodes() uint64 {
	return m.FilesCount + m.FilesSkippedCount
}

// Save writes the manifest atomically to pathname.
func (m *Manifest) Save(pathname string) error {
	serialized, err := m.Serialize()
	if err != nil {
		return err
	}

	tmp := pathname + ".tmp"
	if err := os.WriteFile(tmp, serialized, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, pathname); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func Load(pathname string) (*Manifest, error) {
	serialized, err := os.ReadFile(pathname)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(serialized)
}
