package theme

import (
	"errors"
	"testing"

	"multidrop/internal/store"
	"multidrop/internal/theme"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestApplyEdit_OnlyChangedValues(t *testing.T) {
	kv := store.NewMemoryStore()
	var actions []string
	engine := theme.Open(kv, zerolog.Nop(), theme.Options{
		OnChange: func(c theme.Change) { actions = append(actions, c.Action+" "+c.Key) },
	})

	current := engine.State()
	next := current
	next.Mode = theme.Light
	next.Colors.Border = "#4b5563"

	changed, err := applyEdit(engine, current, next)
	if err != nil {
		t.Fatalf("applyEdit error: %v", err)
	}
	if changed != 2 {
		t.Errorf("changed = %d, want 2", changed)
	}

	want := []string{
		theme.ActionSetMode + " " + theme.KeyThemeMode,
		theme.ActionSetColor + " " + theme.RoleBorder.Key(),
	}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(next, engine.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEdit_NoChanges(t *testing.T) {
	engine := theme.Open(store.NewMemoryStore(), zerolog.Nop(), theme.Options{})
	current := engine.State()

	changed, err := applyEdit(engine, current, current)
	if err != nil || changed != 0 {
		t.Errorf("applyEdit = %d, %v; want 0, nil", changed, err)
	}
}

type failingStore struct{ *store.MemoryStore }

func (failingStore) SetMany(map[string]string) error { return errors.New("disk full") }

func TestApplyEdit_StopsAtFirstFailure(t *testing.T) {
	engine := theme.Open(failingStore{store.NewMemoryStore()}, zerolog.Nop(), theme.Options{})
	current := engine.State()
	next := current
	next.Primary = "#1a73e8"
	next.Colors.Text = "#000000"

	changed, err := applyEdit(engine, current, next)
	if err == nil {
		t.Fatal("expected error")
	}
	if changed != 0 {
		t.Errorf("changed = %d, want 0", changed)
	}
	if diff := cmp.Diff(current, engine.State()); diff != "" {
		t.Errorf("state changed despite failure (-want +got):\n%s", diff)
	}
}
