package state

import (
	"strings"
	"time"
	"unicode"

	"github.com/atomicstack/menubar/internal/menu"
)

// DefaultTypeAheadTimeout is the idle window after which the buffer resets.
const DefaultTypeAheadTimeout = 500 * time.Millisecond

// Timer asks the host to deliver an expiry for generation Gen after After.
// Only the most recently armed generation is live.
type Timer struct {
	Gen   int
	After time.Duration
}

// TypeAhead accumulates typed characters and resolves them to list items.
type TypeAhead struct {
	timeout  time.Duration
	now      func() time.Time
	buffer   string
	gen      int
	armed    bool
	deadline time.Time
}

// NewTypeAhead creates a matcher. A zero timeout uses the default window; a
// nil clock uses time.Now.
func NewTypeAhead(timeout time.Duration, now func() time.Time) *TypeAhead {
	if timeout <= 0 {
		timeout = DefaultTypeAheadTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &TypeAhead{timeout: timeout, now: now}
}

// Buffer returns the characters accumulated since the last reset.
func (t *TypeAhead) Buffer() string {
	return t.buffer
}

// Armed reports whether a reset timer is outstanding.
func (t *TypeAhead) Armed() bool {
	return t.armed
}

// Generation returns the live timer generation.
func (t *TypeAhead) Generation() int {
	return t.gen
}

// Type appends r to the buffer and searches items for the next enabled item
// whose label starts with the buffer. current is the focused id. The
// returned Timer replaces any previously armed one.
func (t *TypeAhead) Type(r rune, items []menu.Item, current string) (string, bool, Timer) {
	now := t.now()
	if t.armed && !now.Before(t.deadline) {
		t.buffer = ""
	}
	t.gen++
	t.armed = false

	char := string(unicode.ToLower(r))
	t.buffer += char

	search := t.buffer
	startAfter := true
	if runes := []rune(t.buffer); len(runes) > 1 {
		if repeated(runes) {
			t.buffer = char
			search = char
		} else {
			startAfter = false
		}
	}

	target, ok := matchPrefix(Sequence(items), current, search, startAfter)

	t.armed = true
	t.deadline = now.Add(t.timeout)
	return target, ok, Timer{Gen: t.gen, After: t.timeout}
}

// Expire clears the buffer when gen is the live timer generation.
func (t *TypeAhead) Expire(gen int) bool {
	if !t.armed || gen != t.gen {
		return false
	}
	t.armed = false
	t.buffer = ""
	return true
}

// Cancel clears the buffer and invalidates any outstanding timer.
func (t *TypeAhead) Cancel() {
	if t.armed {
		t.gen++
	}
	t.armed = false
	t.buffer = ""
}

func repeated(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

func matchPrefix(seq []menu.Item, current, search string, startAfter bool) (string, bool) {
	n := len(seq)
	if n == 0 || search == "" {
		return "", false
	}
	begin := IndexIn(seq, current)
	switch {
	case begin < 0:
		begin = 0
	case startAfter:
		begin++
	}
	for k := 0; k < n; k++ {
		item := seq[(begin+k)%n]
		if !item.Enabled() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(item.Label), search) {
			return item.ID, true
		}
	}
	return "", false
}
