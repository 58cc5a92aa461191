// This file is part of rp2040-interpolator.
//
// rp2040-interpolator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rp2040-interpolator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rp2040-interpolator.  If not, see <https://www.gnu.org/licenses/>.

// Package logger implements a small process-wide tagged log, kept entirely
// in memory so that a debugger or CLI front-end can Tail() it on demand
// rather than have entries scroll past on stderr uninvited.
//
// The logging backend is github.com/sirupsen/logrus: each entry is recorded
// both in the in-memory ring (for Tail/Write) and through a logrus.Logger
// with the tag attached as a structured field, so that anything watching
// logrus output (a hook, a file, journald) sees the same entries.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const maxEntries = 1000

type entry struct {
	tag string
	msg string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.msg)
}

var (
	mu      sync.Mutex
	entries []entry
	backend = logrus.New()
)

func init() {
	backend.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	backend.SetOutput(io.Discard)
}

// Log records a tagged message. tag is conventionally the name of the
// subsystem or operation, eg. "proxy" or "engine".
func Log(tag string, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	mu.Lock()
	entries = append(entries, entry{tag: tag, msg: msg})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
	mu.Unlock()

	backend.WithField("tag", tag).Info(msg)
}

// Write writes every recorded entry to w, oldest first.
func Write(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, e := range entries {
		fmt.Fprintf(w, "%s\n", e)
	}
}

// Tail writes the most recent n entries to w, oldest first. Asking for more
// entries than have been recorded is not an error; Tail simply writes what
// it has.
func Tail(w io.Writer, n int) {
	mu.Lock()
	defer mu.Unlock()
	if n > len(entries) {
		n = len(entries)
	}
	for _, e := range entries[len(entries)-n:] {
		fmt.Fprintf(w, "%s\n", e)
	}
}

// Clear empties the in-memory log. Used by tests to obtain a clean slate.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = entries[:0]
}

// SetOutput redirects the logrus backend's output. The in-memory ring used
// by Write/Tail is unaffected.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// String renders the entire log as a single string, useful for debugging
// dumps embedded in other output.
func String() string {
	mu.Lock()
	defer mu.Unlock()
	var s strings.Builder
	for _, e := range entries {
		s.WriteString(e.String())
		s.WriteByte('\n')
	}
	return s.String()
}
