package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind       = errors.New("unknown item type")
	ErrDuplicateID       = errors.New("duplicate item id")
	ErrMissingID         = errors.New("missing item id")
	ErrRadioOutsideGroup = errors.New("radio outside radio group")
)

type barDoc struct {
	Label   string     `yaml:"label"`
	Entries []entryDoc `yaml:"menus"`
}

type entryDoc struct {
	ID    string    `yaml:"id"`
	Label string    `yaml:"label"`
	Items []itemDoc `yaml:"items"`
}

type itemDoc struct {
	Type     string    `yaml:"type"`
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Name     string    `yaml:"name"`
	Disabled bool      `yaml:"disabled"`
	Checked  bool      `yaml:"checked"`
	Shortcut string    `yaml:"shortcut"`
	Items    []itemDoc `yaml:"items"`
}

var kindsByName = map[string]Kind{
	"action":     KindAction,
	"checkbox":   KindCheckbox,
	"radio":      KindRadio,
	"separator":  KindSeparator,
	"radiogroup": KindRadioGroup,
	"group":      KindRadioGroup,
	"submenu":    KindSubmenu,
}

// LoadFile reads a catalogue file. JSON documents are accepted as YAML.
func LoadFile(path string) (Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bar{}, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	bar, err := Decode(f)
	if err != nil {
		return Bar{}, fmt.Errorf("%s: %w", path, err)
	}
	return bar, nil
}

// Decode parses a catalogue document into a Bar and validates its tree.
func Decode(r io.Reader) (Bar, error) {
	var doc barDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Bar{}, nil
		}
		return Bar{}, fmt.Errorf("decode catalogue: %w", err)
	}
	seen := make(map[string]struct{})
	claim := func(id, where string) error {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%s: %w", where, ErrMissingID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: %w %q", where, ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		return nil
	}
	bar := Bar{Label: doc.Label, Entries: make([]BarEntry, 0, len(doc.Entries))}
	for i, es := range doc.Entries {
		where := fmt.Sprintf("menus[%d]", i)
		if err := claim(es.ID, where); err != nil {
			return Bar{}, err
		}
		items, err := convertItems(es.Items, where, false, claim)
		if err != nil {
			return Bar{}, err
		}
		bar.Entries = append(bar.Entries, BarEntry{ID: es.ID, Label: es.Label, Items: items})
	}
	return bar, nil
}

func convertItems(docs []itemDoc, where string, inGroup bool, claim func(id, where string) error) ([]Item, error) {
	items := make([]Item, 0, len(docs))
	for i, is := range docs {
		at := fmt.Sprintf("%s.items[%d]", where, i)
		kind, err := docKind(is)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		if err := claim(is.ID, at); err != nil {
			return nil, err
		}
		if kind == KindRadio && !inGroup {
			return nil, fmt.Errorf("%s: %w", at, ErrRadioOutsideGroup)
		}
		if inGroup && kind != KindRadio {
			return nil, fmt.Errorf("%s: radio group members must be radios, got %s", at, kind)
		}
		item := Item{
			ID:       is.ID,
			Label:    is.Label,
			Kind:     kind,
			Disabled: is.Disabled,
			Checked:  is.Checked,
			Shortcut: is.Shortcut,
			Name:     is.Name,
		}
		switch kind {
		case KindRadioGroup:
			if item.Name == "" {
				item.Name = item.ID
			}
			item.Items, err = convertItems(is.Items, at, true, claim)
		case KindSubmenu:
			item.Items, err = convertItems(is.Items, at, false, claim)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func docKind(is itemDoc) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(is.Type))
	if name == "" {
		if len(is.Items) > 0 {
			return KindSubmenu, nil
		}
		return KindAction, nil
	}
	kind, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, is.Type)
	}
	return kind, nil
}
