// Package tabs implements the roving-focus tab group: exactly one tab is
// active at any time, its panel is the only one shown, and arrow/Home/End
// movement activates the newly focused tab in a single step.
package tabs

// Group holds the declared tab ids and the active index. The active tab is
// always a member of the declared set; an empty group has no active tab and
// every operation on it is a no-op.
type Group struct {
	ids    []string
	active int
}

// New creates a group with the first tab active.
func New(ids []string) *Group {
	return &Group{ids: ids}
}

// ActiveID returns the active tab's id, or "" for an empty group.
func (g *Group) ActiveID() string {
	if len(g.ids) == 0 {
		return ""
	}
	return g.ids[g.active]
}

// ActiveIndex returns the active tab's position.
func (g *Group) ActiveIndex() int { return g.active }

// Len returns the number of tabs.
func (g *Group) Len() int { return len(g.ids) }

// IsActive reports whether id names the active tab.
func (g *Group) IsActive(id string) bool { return g.ActiveID() == id && id != "" }

// Activate handles a direct click on a tab trigger. Unknown ids are
// ignored. Returns true when the active tab changed.
func (g *Group) Activate(id string) bool {
	for i, t := range g.ids {
		if t == id {
			if g.active == i {
				return false
			}
			g.active = i
			return true
		}
	}
	return false
}

// Next moves to the following tab, wrapping to the first after the last.
func (g *Group) Next() bool {
	if len(g.ids) < 2 {
		return false
	}
	g.active = (g.active + 1) % len(g.ids)
	return true
}

// Prev moves to the preceding tab, wrapping to the last before the first.
func (g *Group) Prev() bool {
	if len(g.ids) < 2 {
		return false
	}
	g.active = (g.active - 1 + len(g.ids)) % len(g.ids)
	return true
}

// First activates the first tab (Home).
func (g *Group) First() bool {
	if len(g.ids) == 0 || g.active == 0 {
		return false
	}
	g.active = 0
	return true
}

// Last activates the last tab (End).
func (g *Group) Last() bool {
	if len(g.ids) == 0 || g.active == len(g.ids)-1 {
		return false
	}
	g.active = len(g.ids) - 1
	return true
}

// SetTabs replaces the declared set (content reload), keeping the active
// tab when its id survives and falling back to the first tab otherwise.
func (g *Group) SetTabs(ids []string) {
	prev := g.ActiveID()
	g.ids = ids
	g.active = 0
	for i, t := range ids {
		if t == prev {
			g.active = i
			return
		}
	}
}
