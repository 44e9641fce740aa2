// Package tailbuffer retains the most recent status lines emitted by the
// daemon's engine and selection activity.
package tailbuffer

import (
	"strings"
	"sync"
)

// StatusBuffer retains the last N complete lines written to it, plus the
// most recent line as the current status. It implements io.Writer so it can
// sit behind log output or progress callbacks. Safe for concurrent use.
type StatusBuffer struct {
	lock sync.Mutex
	// capacity is the maximum number of retained lines.
	capacity int
	// lines holds the retained complete lines, oldest first.
	lines []string
	// partial accumulates an unterminated trailing line.
	partial string
}

// NewStatusBuffer creates a buffer retaining up to capacity lines. A zero
// capacity retains only the most recent line.
func NewStatusBuffer(capacity int) *StatusBuffer {
	return &StatusBuffer{capacity: capacity}
}

// Write implements io.Writer. Input is split on newlines; complete lines
// enter the tail, and a trailing fragment is held until its newline
// arrives.
func (b *StatusBuffer) Write(buffer []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	text := b.partial + string(buffer)
	lines := strings.Split(text, "\n")
	b.partial = lines[len(lines)-1]
	for _, line := range lines[:len(lines)-1] {
		b.appendLine(line)
	}
	return len(buffer), nil
}

// WriteLine records one complete status line.
func (b *StatusBuffer) WriteLine(line string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.appendLine(line)
}

// appendLine adds a line to the tail, evicting the oldest when over
// capacity. Callers must hold lock.
func (b *StatusBuffer) appendLine(line string) {
	if line == "" {
		return
	}
	if b.capacity == 0 {
		b.lines = []string{line}
		return
	}
	b.lines = append(b.lines, line)
	if len(b.lines) > b.capacity {
		b.lines = b.lines[len(b.lines)-b.capacity:]
	}
}

// Status returns the most recent line, or the empty string when nothing has
// been written.
func (b *StatusBuffer) Status() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.partial != "" {
		return b.partial
	}
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[len(b.lines)-1]
}

// Lines returns the retained lines, oldest first.
func (b *StatusBuffer) Lines() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}
