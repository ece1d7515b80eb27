package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s := Open(path, zap.NewNop())
	defer s.Close()

	assert.Equal(t, "light", s.Get(KeyTheme, "light"), "absent key returns default")

	s.Set(KeyTheme, "dark")
	assert.Equal(t, "dark", s.Get(KeyTheme, "light"))

	s.Set(KeyTheme, "light")
	assert.Equal(t, "light", s.Get(KeyTheme, "dark"), "set overwrites")
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s := Open(path, zap.NewNop())
	s.Set(KeyAccordionOpen, "insurance")
	s.Set(KeyTheme, "dark")
	s.Close()

	s2 := Open(path, zap.NewNop())
	defer s2.Close()
	assert.Equal(t, "insurance", s2.Get(KeyAccordionOpen, ""))
	assert.Equal(t, "dark", s2.Get(KeyTheme, "light"))
}

func TestDelete(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "kv.db"), zap.NewNop())
	defer s.Close()

	s.Set(KeyAccordionOpen, "hours")
	s.Delete(KeyAccordionOpen)
	assert.Equal(t, "closed", s.Get(KeyAccordionOpen, "closed"))

	s.Delete("never-existed") // must not panic
}

// Storage failure is absorbed: an unusable path degrades to a working
// in-memory store, never an error the page could see.
func TestUnusablePathDegradesToMemory(t *testing.T) {
	// A path whose parent is a regular file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := Open(filepath.Join(blocker, "sub", "kv.db"), zap.NewNop())
	defer s.Close()

	s.Set(KeyTheme, "dark")
	assert.Equal(t, "dark", s.Get(KeyTheme, "light"), "memory fallback still serves this session")
}

func TestCloseThenSetStillServesMemory(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "kv.db"), zap.NewNop())
	s.Close()

	s.Set(KeyTheme, "dark") // write after close hits memory only
	assert.Equal(t, "dark", s.Get(KeyTheme, "light"))
}
