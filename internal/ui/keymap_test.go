package ui

import (
	"testing"

	"github.com/atomicstack/menubar/internal/menubar"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateNavigationKeys(t *testing.T) {
	keys := defaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want menubar.Key
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, menubar.Press(menubar.KeyRight)},
		{tea.KeyMsg{Type: tea.KeyLeft}, menubar.Press(menubar.KeyLeft)},
		{tea.KeyMsg{Type: tea.KeyDown}, menubar.Press(menubar.KeyDown)},
		{tea.KeyMsg{Type: tea.KeyUp}, menubar.Press(menubar.KeyUp)},
		{tea.KeyMsg{Type: tea.KeyHome}, menubar.Press(menubar.KeyHome)},
		{tea.KeyMsg{Type: tea.KeyEnd}, menubar.Press(menubar.KeyEnd)},
		{tea.KeyMsg{Type: tea.KeyEnter}, menubar.Press(menubar.KeyEnter)},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, menubar.Press(menubar.KeySpace)},
		{tea.KeyMsg{Type: tea.KeyEsc}, menubar.Press(menubar.KeyEscape)},
		{tea.KeyMsg{Type: tea.KeyTab}, menubar.Press(menubar.KeyTab)},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, menubar.Key{Code: menubar.KeyTab, Shift: true}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}}, menubar.Key{Code: menubar.KeyChar, Rune: 'S', Shift: true}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, menubar.Key{Code: menubar.KeyChar, Rune: 'f', Alt: true}},
	}
	for _, tc := range cases {
		got, ok := keys.translate(tc.msg)
		if !ok {
			t.Fatalf("expected %q to translate", tc.msg.String())
		}
		if got != tc.want {
			t.Fatalf("expected %#v for %q, got %#v", tc.want, tc.msg.String(), got)
		}
	}
}

func TestTranslateIgnoresOtherKeys(t *testing.T) {
	keys := defaultKeyMap()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyPgDown},
		{Type: tea.KeyRunes, Runes: []rune("ab")},
		{Type: tea.KeyCtrlA},
	} {
		if _, ok := keys.translate(msg); ok {
			t.Fatalf("expected %q to be ignored", msg.String())
		}
	}
}

func TestHelpCoversEveryBinding(t *testing.T) {
	keys := defaultKeyMap()
	count := 0
	for _, group := range keys.FullHelp() {
		count += len(group)
	}
	if count != 12 {
		t.Fatalf("expected 12 bindings in full help, got %d", count)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Fatalf("expected short help bindings")
	}
}
