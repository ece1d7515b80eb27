package tabs

import (
	"math/rand"
	"testing"
)

var tabIDs = []string{"visit", "location", "portal"}

func TestNew_FirstTabActive(t *testing.T) {
	g := New(tabIDs)
	if g.ActiveID() != "visit" {
		t.Fatalf("active = %q, want visit", g.ActiveID())
	}
}

func TestActivate_ClickMovesDirectly(t *testing.T) {
	g := New(tabIDs)
	if !g.Activate("portal") {
		t.Fatal("activating a different tab should report a change")
	}
	if g.ActiveID() != "portal" {
		t.Fatalf("active = %q, want portal", g.ActiveID())
	}
	if g.Activate("portal") {
		t.Fatal("re-activating the active tab should not report a change")
	}
	if g.Activate("nope") {
		t.Fatal("unknown id should be ignored")
	}
}

func TestNextPrev_WrapAround(t *testing.T) {
	g := New(tabIDs)

	g.Next()
	g.Next()
	if g.ActiveID() != "portal" {
		t.Fatalf("active = %q, want portal", g.ActiveID())
	}
	g.Next() // wraps to the first
	if g.ActiveID() != "visit" {
		t.Fatalf("active = %q, want visit after wrap", g.ActiveID())
	}
	g.Prev() // wraps to the last
	if g.ActiveID() != "portal" {
		t.Fatalf("active = %q, want portal after reverse wrap", g.ActiveID())
	}
}

func TestHomeEnd(t *testing.T) {
	g := New(tabIDs)
	g.Last()
	if g.ActiveID() != "portal" {
		t.Fatalf("End: active = %q, want portal", g.ActiveID())
	}
	g.First()
	if g.ActiveID() != "visit" {
		t.Fatalf("Home: active = %q, want visit", g.ActiveID())
	}
}

// Exactly one tab is active after any input sequence.
func TestInvariant_ExactlyOneActive(t *testing.T) {
	g := New(tabIDs)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0:
			g.Next()
		case 1:
			g.Prev()
		case 2:
			g.First()
		case 3:
			g.Last()
		case 4:
			g.Activate(tabIDs[rng.Intn(len(tabIDs))])
		}
		active := 0
		for _, id := range tabIDs {
			if g.IsActive(id) {
				active++
			}
		}
		if active != 1 {
			t.Fatalf("step %d: %d tabs active", i, active)
		}
	}
}

func TestEmptyGroupIsInert(t *testing.T) {
	g := New(nil)
	if g.ActiveID() != "" {
		t.Fatalf("empty group active = %q", g.ActiveID())
	}
	if g.Next() || g.Prev() || g.First() || g.Last() || g.Activate("x") {
		t.Fatal("operations on an empty group should be no-ops")
	}
}

func TestSetTabs_KeepsSurvivingActive(t *testing.T) {
	g := New(tabIDs)
	g.Activate("location")

	g.SetTabs([]string{"location", "parking"})
	if g.ActiveID() != "location" {
		t.Fatalf("active = %q, want location preserved", g.ActiveID())
	}

	g.SetTabs([]string{"hours", "parking"})
	if g.ActiveID() != "hours" {
		t.Fatalf("active = %q, want fallback to first", g.ActiveID())
	}
}
