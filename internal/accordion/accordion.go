// Package accordion implements the single-open disclosure state machine for
// the FAQ section. At most one item is open at a time; the open item is
// persisted so the next session restores it.
package accordion

import (
	"carekiosk/internal/kvstore"
)

// Group tracks which item, if any, is open. The zero value is a fully
// closed group with no persistence; use New for the wired version.
type Group struct {
	itemIDs []string
	openID  string
	store   *kvstore.Store
}

// New creates a group over the given item ids and restores the previously
// open item from the store. A persisted id that no longer names an existing
// item (or any malformed value) degrades to all-closed.
func New(itemIDs []string, store *kvstore.Store) *Group {
	g := &Group{itemIDs: itemIDs, store: store}
	if store != nil {
		if saved := store.Get(kvstore.KeyAccordionOpen, ""); saved != "" && g.exists(saved) {
			g.openID = saved
		}
	}
	return g
}

// Toggle handles a click on the item's trigger: it closes the currently
// open item and opens the clicked one, or closes the clicked item if it was
// already open. Unknown ids are ignored. Every transition is persisted.
// Returns true when the state changed.
func (g *Group) Toggle(id string) bool {
	if !g.exists(id) {
		return false
	}
	if g.openID == id {
		g.openID = ""
	} else {
		g.openID = id
	}
	g.persist()
	return true
}

// OpenID returns the open item's id, or "" when all items are closed.
func (g *Group) OpenID() string { return g.openID }

// IsOpen reports whether the given item is the open one.
func (g *Group) IsOpen(id string) bool { return id != "" && g.openID == id }

// SetItems replaces the item set (content reload). An open item that no
// longer exists falls back to closed.
func (g *Group) SetItems(itemIDs []string) {
	g.itemIDs = itemIDs
	if g.openID != "" && !g.exists(g.openID) {
		g.openID = ""
		g.persist()
	}
}

func (g *Group) persist() {
	if g.store == nil {
		return
	}
	if g.openID == "" {
		g.store.Delete(kvstore.KeyAccordionOpen)
	} else {
		g.store.Set(kvstore.KeyAccordionOpen, g.openID)
	}
}

func (g *Group) exists(id string) bool {
	for _, item := range g.itemIDs {
		if item == id {
			return true
		}
	}
	return false
}
