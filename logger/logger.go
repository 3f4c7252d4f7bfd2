// Package logger keeps a single, bounded log of tagged entries for the whole
// program. Nothing is printed unless an echo writer is set, so library code
// can log freely without polluting a disassembly written to stdout.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// maxEntries bounds the central log.
const maxEntries = 256

// Entry is one line of the log.
type Entry struct {
	Tag      string
	Detail   string
	repeated int
}

func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Tag)
	sb.WriteString(": ")
	sb.WriteString(e.Detail)
	if e.repeated > 0 {
		fmt.Fprintf(&sb, " (repeat x%d)", e.repeated+1)
	}
	sb.WriteString("\n")
	return sb.String()
}

type logger struct {
	sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central = &logger{}

func (l *logger) log(tag, detail string) {
	l.Lock()
	defer l.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", " ")

	// collapse identical consecutive entries
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].repeated++
	} else {
		l.entries = append(l.entries, Entry{Tag: tag, Detail: detail})
		if len(l.entries) > maxEntries {
			l.entries = l.entries[len(l.entries)-maxEntries:]
		}
	}

	if l.echo != nil {
		_, _ = io.WriteString(l.echo, Entry{Tag: tag, Detail: detail}.String())
	}
}

// Log adds an entry to the central log.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(tag, format string, args ...any) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear removes every entry.
func Clear() {
	central.Lock()
	defer central.Unlock()
	central.entries = central.entries[:0]
}

// Write copies the whole log to w.
func Write(w io.Writer) {
	central.Lock()
	defer central.Unlock()
	for _, e := range central.entries {
		_, _ = io.WriteString(w, e.String())
	}
}

// Tail writes the last n entries to w.
func Tail(w io.Writer, n int) {
	central.Lock()
	defer central.Unlock()
	if n > len(central.entries) {
		n = len(central.entries)
	}
	if n < 0 {
		n = 0
	}
	for _, e := range central.entries[len(central.entries)-n:] {
		_, _ = io.WriteString(w, e.String())
	}
}

// SetEcho makes every new entry also go to w as it is logged. A nil writer
// turns echoing off.
func SetEcho(w io.Writer) {
	central.Lock()
	defer central.Unlock()
	central.echo = w
}
