package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tempStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "multidrop.db")
	s, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// stores runs fn against both implementations.
func stores(t *testing.T, fn func(t *testing.T, s KV)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, tempStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
}

func TestGet_NotFound(t *testing.T) {
	stores(t, func(t *testing.T, s KV) {
		v, ok, err := s.Get("multidrop-primary-color")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok || v != "" {
			t.Errorf("expected miss, got %q ok=%v", v, ok)
		}
	})
}

func TestSet_Upsert(t *testing.T) {
	stores(t, func(t *testing.T, s KV) {
		if err := s.Set("multidrop-theme-mode", "dark"); err != nil {
			t.Fatalf("first Set failed: %v", err)
		}
		if err := s.Set("multidrop-theme-mode", "light"); err != nil {
			t.Fatalf("second Set failed: %v", err)
		}

		v, ok, err := s.Get("multidrop-theme-mode")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok || v != "light" {
			t.Errorf("expected %q, got %q ok=%v", "light", v, ok)
		}

		keys, err := s.Keys()
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		if diff := cmp.Diff([]string{"multidrop-theme-mode"}, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSetMany(t *testing.T) {
	stores(t, func(t *testing.T, s KV) {
		entries := map[string]string{
			"multidrop-color-text":   "#F9FAFB",
			"multidrop-color-border": "#374151",
		}
		if err := s.SetMany(entries); err != nil {
			t.Fatalf("SetMany failed: %v", err)
		}
		if err := s.SetMany(nil); err != nil {
			t.Fatalf("SetMany(nil) failed: %v", err)
		}

		for k, want := range entries {
			got, ok, err := s.Get(k)
			if err != nil || !ok || got != want {
				t.Errorf("Get(%q) = %q, %v, %v; want %q", k, got, ok, err, want)
			}
		}

		keys, _ := s.Keys()
		want := []string{"multidrop-color-border", "multidrop-color-text"}
		if diff := cmp.Diff(want, keys); diff != "" {
			t.Errorf("keys mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDelete(t *testing.T) {
	stores(t, func(t *testing.T, s KV) {
		s.Set("multidrop-locale", "de")
		if err := s.Delete("multidrop-locale"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := s.Delete("multidrop-locale"); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
		if _, ok, _ := s.Get("multidrop-locale"); ok {
			t.Error("expected key to be gone")
		}
	})
}

func TestSQLiteStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multidrop.db")

	s1, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	s1.Set("multidrop-primary-color", "#1a73e8")
	s1.Close()

	s2, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.Get("multidrop-primary-color")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || got != "#1a73e8" {
		t.Errorf("expected persisted value, got %q ok=%v", got, ok)
	}
}

func TestSQLiteStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "multidrop.db")
	s, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed to create nested directory: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist at %s, got error: %v", path, err)
	}
}

func TestMemoryStore_Snapshot(t *testing.T) {
	m := NewMemoryStore()
	m.Set("a", "1")

	snap := m.Snapshot()
	snap["a"] = "changed"

	if v, _, _ := m.Get("a"); v != "1" {
		t.Errorf("snapshot aliases store: got %q", v)
	}
}
