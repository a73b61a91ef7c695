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

package events

import (
	"time"
)

type Event interface {
	Timestamp() time.Time
}

/**/
type Start struct {
	ts time.Time
}

func StartEvent() Start {
	return Start{ts: time.Now()}
}
func (e Start) Timestamp() time.Time {
	return e.ts
}

/**/
type Done struct {
	ts time.Time
}

func DoneEvent() Done {
	return Done{ts: time.Now()}
}
func (e Done) Timestamp() time.Time {
	return e.ts
}

/**/
type Phase struct {
	ts time.Time

	Name string
}

func PhaseEvent(name string) Phase {
	return Phase{ts: time.Now(), Name: name}
}
func (e Phase) Timestamp() time.Time {
	return e.ts
}

/**/
type Warning struct {
	ts time.Time

	Message string
}

func WarningEvent(message string) Warning {
	return Warning{ts: time.Now(), Message: message}
}
func (e Warning) Timestamp() time.Time {
	return e.ts
}

/**/
type Error struct {
	ts time.Time

	Pathname string
	Message  string
}

func ErrorEvent(pathname string, message string) Error {
	return Error{ts: time.Now(), Pathname: pathname, Message: message}
}
func (e Error) Timestamp() time.Time {
	return e.ts
}

/**/
type PoolGenerated struct {
	ts time.Time

	Size     int
	Duration time.Duration
}

func PoolGeneratedEvent(size int, duration time.Duration) PoolGenerated {
	return PoolGenerated{ts: time.Now(), Size: size, Duration: duration}
}
func (e PoolGenerated) Timestamp() time.Time {
	return e.ts
}

/**/
type DirectoryCreated struct {
	ts time.Time

	Pathname string
}

func DirectoryCreatedEvent(pathname string) DirectoryCreated {
	return DirectoryCreated{ts: time.Now(), Pathname: pathname}
}
func (e DirectoryCreated) Timestamp() time.Time {
	return e.ts
}

/**/
type DirectoryExists struct {
	ts time.Time

	Pathname string
}

func DirectoryExistsEvent(pathname string) DirectoryExists {
	return DirectoryExists{ts: time.Now(), Pathname: pathname}
}
func (e DirectoryExists) Timestamp() time.Time {
	return e.ts
}

/**/
type FileCreated struct {
	ts time.Time

	Pathname string
}

func FileCreatedEvent(pathname string) FileCreated {
	return FileCreated{ts: time.Now(), Pathname: pathname}
}
func (e FileCreated) Timestamp() time.Time {
	return e.ts
}

/**/
type FileExists struct {
	ts time.Time

	Pathname string
}

func FileExistsEvent(pathname string) FileExists {
	return FileExists{ts: time.Now(), Pathname: pathname}
}
func (e FileExists) Timestamp() time.Time {
	return e.ts
}

/**/
type LevelDone struct {
	ts time.Time

	Level    uint64
	Pathname string
	Inodes   uint64
}

func LevelDoneEvent(level uint64, pathname string, inodes uint64) LevelDone {
	return LevelDone{ts: time.Now(), Level: level, Pathname: pathname, Inodes: inodes}
}
func (e LevelDone) Timestamp() time.Time {
	return e.ts
}
