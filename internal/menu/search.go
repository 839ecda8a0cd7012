package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a search hit with the breadcrumb leading to it.
type Match struct {
	ID       string
	Label    string
	Crumbs   []string
	Distance int
}

// Path renders the breadcrumb joined with sep.
func (m Match) Path(sep string) string {
	return strings.Join(append(append([]string(nil), m.Crumbs...), m.Label), sep)
}

type searchTarget struct {
	id     string
	label  string
	crumbs []string
}

// Search fuzzy-matches query against every focusable item label in the bar.
// Results are ordered by match distance, then tree order.
func Search(bar Bar, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	var targets []searchTarget
	var collect func(items []Item, crumbs []string)
	collect = func(items []Item, crumbs []string) {
		for _, item := range items {
			switch item.Kind {
			case KindSeparator:
				continue
			case KindRadioGroup:
				collect(item.Items, crumbs)
				continue
			}
			targets = append(targets, searchTarget{id: item.ID, label: item.Label, crumbs: crumbs})
			if item.Kind == KindSubmenu {
				collect(item.Items, append(append([]string(nil), crumbs...), item.Label))
			}
		}
	}
	for _, entry := range bar.Entries {
		collect(entry.Items, []string{entry.Label})
	}
	labels := make([]string, len(targets))
	for i, t := range targets {
		labels[i] = t.label
	}
	ranks := fuzzy.RankFindFold(query, labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	matches := make([]Match, 0, len(ranks))
	for _, rank := range ranks {
		t := targets[rank.OriginalIndex]
		matches = append(matches, Match{
			ID:       t.id,
			Label:    t.label,
			Crumbs:   t.crumbs,
			Distance: rank.Distance,
		})
	}
	return matches
}
