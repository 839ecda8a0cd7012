package menubar

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EventKind discriminates scripted events.
type EventKind int

const (
	EventKey EventKind = iota
	EventClick
	EventHover
	EventOutside
	EventBlur
	EventWait
)

// Event is one host event: a key press, a pointer event on an entry or item
// id, an outside pointer event, focus loss, or the type-ahead window
// elapsing.
type Event struct {
	Kind   EventKind
	Key    Key
	Target string
}

// Dispatch routes an event to the matching handler.
func (m *Menubar) Dispatch(ev Event) Result {
	switch ev.Kind {
	case EventKey:
		return m.HandleKey(ev.Key)
	case EventClick:
		if i := m.index.EntryIndex(ev.Target); i >= 0 {
			return m.ClickEntry(i)
		}
		return m.ClickItem(ev.Target)
	case EventHover:
		if i := m.index.EntryIndex(ev.Target); i >= 0 {
			return m.HoverEntry(i)
		}
		return m.HoverItem(ev.Target)
	case EventOutside:
		return m.PointerOutside()
	case EventBlur:
		return m.Blur()
	case EventWait:
		m.typeahead.Expire(m.typeahead.Generation())
		return Result{}
	}
	return Result{}
}

var keysByName = map[string]Key{
	"right":     Press(KeyRight),
	"left":      Press(KeyLeft),
	"down":      Press(KeyDown),
	"up":        Press(KeyUp),
	"home":      Press(KeyHome),
	"end":       Press(KeyEnd),
	"enter":     Press(KeyEnter),
	"return":    Press(KeyEnter),
	"space":     Press(KeySpace),
	"esc":       Press(KeyEscape),
	"escape":    Press(KeyEscape),
	"tab":       Press(KeyTab),
	"shift+tab": {Code: KeyTab, Shift: true},
}

// ParseScript parses a whitespace or comma separated event script such as
// "down right s enter click:file hover:edit outside wait". Single
// characters are typed as printable keys.
func ParseScript(script string) ([]Event, error) {
	tokens := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	events := make([]Event, 0, len(tokens))
	for _, tok := range tokens {
		ev, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseToken(tok string) (Event, error) {
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		return Event{Kind: EventKey, Key: Char(r)}, nil
	}
	lower := strings.ToLower(tok)
	if key, ok := keysByName[lower]; ok {
		return Event{Kind: EventKey, Key: key}, nil
	}
	switch lower {
	case "outside":
		return Event{Kind: EventOutside}, nil
	case "blur":
		return Event{Kind: EventBlur}, nil
	case "wait":
		return Event{Kind: EventWait}, nil
	}
	if kind, target, ok := strings.Cut(tok, ":"); ok && target != "" {
		switch strings.ToLower(kind) {
		case "click":
			return Event{Kind: EventClick, Target: target}, nil
		case "hover":
			return Event{Kind: EventHover, Target: target}, nil
		}
	}
	return Event{}, fmt.Errorf("unknown event %q", tok)
}
