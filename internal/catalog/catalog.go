// Package catalog computes the visible, ordered subset of the service cards
// for the current search/filter/sort state. Visible is a pure function of
// its inputs: it always recomputes from the full card set, never from event
// deltas, which makes it trivially idempotent.
package catalog

import (
	"sort"
	"strings"

	"carekiosk/internal/content"
)

// SortKey selects the ordering of the visible set.
type SortKey int

const (
	SortAlphabetical SortKey = iota // case-insensitive title, stable ties
	SortPopularity                  // descending popularity, stable ties
)

func (k SortKey) String() string {
	switch k {
	case SortPopularity:
		return "popularity"
	default:
		return "alphabetical"
	}
}

// ParseSortKey maps a persisted/CLI string to a SortKey, defaulting to
// alphabetical for anything unrecognized.
func ParseSortKey(s string) SortKey {
	if strings.EqualFold(s, "popularity") {
		return SortPopularity
	}
	return SortAlphabetical
}

// FilterState is the full search/filter/sort state. ActiveTags uses OR
// semantics: a card matches when it carries any active tag.
type FilterState struct {
	Query      string
	ActiveTags map[string]bool
	Sort       SortKey
}

// NewFilterState returns an empty filter: no query, no tags, alphabetical.
func NewFilterState() FilterState {
	return FilterState{ActiveTags: make(map[string]bool)}
}

// ToggleTag flips a tag chip. Tags are tracked lowercased so chip labels
// and card tags can disagree on case.
func (f *FilterState) ToggleTag(tag string) {
	if f.ActiveTags == nil {
		f.ActiveTags = make(map[string]bool)
	}
	key := strings.ToLower(tag)
	if f.ActiveTags[key] {
		delete(f.ActiveTags, key)
	} else {
		f.ActiveTags[key] = true
	}
}

// TagActive reports whether the tag chip is currently on.
func (f FilterState) TagActive(tag string) bool {
	return f.ActiveTags[strings.ToLower(tag)]
}

// Visible returns the filtered, ordered cards. The input slice is never
// mutated; ties keep the cards' original relative order.
func Visible(cards []content.Card, state FilterState) []content.Card {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	visible := make([]content.Card, 0, len(cards))
	for _, c := range cards {
		if matchesQuery(c, query) && matchesTags(c, state.ActiveTags) {
			visible = append(visible, c)
		}
	}

	switch state.Sort {
	case SortPopularity:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Popularity > visible[j].Popularity
		})
	default:
		sort.SliceStable(visible, func(i, j int) bool {
			return strings.ToLower(visible[i].Title) < strings.ToLower(visible[j].Title)
		})
	}
	return visible
}

func matchesQuery(c content.Card, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), query) ||
		strings.Contains(strings.ToLower(c.Description), query)
}

func matchesTags(c content.Card, active map[string]bool) bool {
	if len(active) == 0 {
		return true
	}
	for _, t := range c.Tags {
		if active[strings.ToLower(t)] {
			return true
		}
	}
	return false
}
