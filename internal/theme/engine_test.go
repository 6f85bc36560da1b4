package theme

import (
	"errors"
	"strings"
	"testing"

	"multidrop/internal/color"
	"multidrop/internal/store"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newEngine(t *testing.T, opts Options) (*Engine, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	return Open(kv, zerolog.Nop(), opts), kv
}

// failingStore reads like an empty store and rejects every write.
type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error)  { return "", false, nil }
func (f failingStore) SetMany(map[string]string) error { return f.err }

// brokenStore fails every read.
type brokenStore struct{ *store.MemoryStore }

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("disk on fire") }

func TestOpen_EmptyStoreUsesDefaults(t *testing.T) {
	e, kv := newEngine(t, Options{})

	if diff := cmp.Diff(DefaultState(), e.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if got := e.Projection().Marker; got != "dark-theme" {
		t.Errorf("Marker = %q, want dark-theme", got)
	}
	if len(kv.Snapshot()) != 0 {
		t.Errorf("Open must not write, store has %v", kv.Snapshot())
	}
	for _, name := range Variables {
		if e.Projection().Var(name) == "" {
			t.Errorf("variable %q not projected", name)
		}
	}
}

func TestSetPrimaryColor(t *testing.T) {
	e, kv := newEngine(t, Options{})

	if err := e.SetPrimaryColor("#1a73e8"); err != nil {
		t.Fatalf("SetPrimaryColor error: %v", err)
	}

	if got := kv.Snapshot()[KeyPrimaryColor]; got != "#1a73e8" {
		t.Errorf("persisted primary = %q, want #1a73e8", got)
	}
	if got := e.State().Primary; got != "#1a73e8" {
		t.Errorf("State().Primary = %q", got)
	}

	p := e.Projection()
	secondary := color.AdjustBrightness("#1a73e8", -25)
	fg := color.ContrastingColor("#1a73e8")

	want := map[string]string{
		VarPrimary:             "214 82% 51%",
		VarRing:                "214 82% 51%",
		VarAccent:              "214 82% 51%",
		VarPrimaryForeground:   color.HexToHSL(fg).String(),
		VarSecondaryForeground: color.HexToHSL(fg).String(),
		VarSecondary:           color.HexToHSL(secondary).String(),
		VarMuted:               color.HexToHSL(secondary).String(),
		VarBorder:              color.HexToHSL(secondary).String(),
	}
	for name, v := range want {
		if got := p.Var(name); got != v {
			t.Errorf("--%s = %q, want %q", name, got, v)
		}
	}
	if p.Var(VarSecondary) != "214 79% 38%" {
		t.Errorf("--secondary = %q, want 214 79%% 38%%", p.Var(VarSecondary))
	}

	wantGradient := Gradient{From: "#1a73e8", To: color.AdjustBrightness("#1a73e8", -15)}
	if diff := cmp.Diff(wantGradient, p.Gradient); diff != "" {
		t.Errorf("gradient mismatch (-want +got):\n%s", diff)
	}
}

func TestSetPrimaryColor_NormalizesInput(t *testing.T) {
	e, kv := newEngine(t, Options{})

	if err := e.SetPrimaryColor("#ABC"); err != nil {
		t.Fatalf("SetPrimaryColor error: %v", err)
	}
	if got := kv.Snapshot()[KeyPrimaryColor]; got != "#aabbcc" {
		t.Errorf("persisted primary = %q, want #aabbcc", got)
	}
}

func TestSetPrimaryColor_Idempotent(t *testing.T) {
	e, kv := newEngine(t, Options{})

	if err := e.SetPrimaryColor("#d93025"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	state1, proj1, stored1 := e.State(), e.Projection(), kv.Snapshot()

	if err := e.SetPrimaryColor("#d93025"); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if diff := cmp.Diff(state1, e.State()); diff != "" {
		t.Errorf("state changed (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(proj1, e.Projection()); diff != "" {
		t.Errorf("projection changed (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(stored1, kv.Snapshot()); diff != "" {
		t.Errorf("storage changed (-first +second):\n%s", diff)
	}
}

func TestSetPrimaryColor_InvalidLeavesStateUntouched(t *testing.T) {
	e, kv := newEngine(t, Options{})
	before := e.Projection()

	for _, in := range []string{"1e8e3e", "#1e8e3", "#ggg", ""} {
		err := e.SetPrimaryColor(in)
		if !errors.Is(err, color.ErrInvalidHex) {
			t.Errorf("SetPrimaryColor(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}

	if len(kv.Snapshot()) != 0 {
		t.Errorf("invalid input reached storage: %v", kv.Snapshot())
	}
	if diff := cmp.Diff(before, e.Projection()); diff != "" {
		t.Errorf("projection changed (-before +after):\n%s", diff)
	}
}

func TestToggleMode(t *testing.T) {
	e, kv := newEngine(t, Options{})

	mode, err := e.ToggleMode()
	if err != nil {
		t.Fatalf("ToggleMode error: %v", err)
	}
	if mode != Light {
		t.Fatalf("ToggleMode() = %q, want light", mode)
	}
	if got := kv.Snapshot()[KeyThemeMode]; got != "light" {
		t.Errorf("persisted mode = %q, want light", got)
	}

	p := e.Projection()
	if p.Marker != "light-theme" {
		t.Errorf("Marker = %q, want light-theme", p.Marker)
	}
	if len(BaseVariables) != 10 {
		t.Fatalf("expected 10 base variables, got %d", len(BaseVariables))
	}
	for _, name := range BaseVariables {
		if got, want := p.Var(name), lightPalette[name]; got != want {
			t.Errorf("--%s = %q, want %q", name, got, want)
		}
	}

	mode, err = e.ToggleMode()
	if err != nil || mode != Dark {
		t.Fatalf("second ToggleMode() = %q, %v", mode, err)
	}
	for _, name := range BaseVariables {
		if got, want := e.Projection().Var(name), darkPalette[name]; got != want {
			t.Errorf("--%s = %q, want %q", name, got, want)
		}
	}
}

func TestSetMode(t *testing.T) {
	e, kv := newEngine(t, Options{})

	if err := e.SetMode("LIGHT"); err != nil {
		t.Fatalf("SetMode error: %v", err)
	}
	if e.State().Mode != Light || kv.Snapshot()[KeyThemeMode] != "light" {
		t.Errorf("mode not applied: state=%q stored=%q", e.State().Mode, kv.Snapshot()[KeyThemeMode])
	}

	if err := e.SetMode("sepia"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("SetMode(sepia) error = %v, want ErrUnknownMode", err)
	}
}

func TestSetRoleColor_Derivations(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		hex    string
		legacy bool
		want   map[string]string
	}{
		{
			name: "secondary",
			role: RoleSecondary,
			hex:  "#1f2937",
			want: map[string]string{
				VarSecondary:           "215 28% 17%",
				VarSecondaryForeground: "0 0% 100%",
				VarMuted:               "215 28% 17%",
			},
		},
		{
			name:   "secondary legacy",
			role:   RoleSecondary,
			hex:    "#1f2937",
			legacy: true,
			want: map[string]string{
				VarSecondary:           "215 28% 17%",
				VarSecondaryForeground: "215 28% 73%",
				VarMuted:               "215 28% 17%",
			},
		},
		{
			name: "text",
			role: RoleText,
			hex:  "#f9fafb",
			want: map[string]string{
				VarForeground:        "210 20% 98%",
				VarPopoverForeground: "210 20% 98%",
				VarCardForeground:    "210 20% 98%",
				VarAccentForeground:  "210 20% 98%",
				VarMutedForeground:   "210 0% 68%",
			},
		},
		{
			name: "border",
			role: RoleBorder,
			hex:  "#374151",
			want: map[string]string{
				VarBorder: "217 19% 27%",
				VarInput:  "217 19% 37%",
				VarRing:   "217 29% 37%",
			},
		},
		{
			name: "button",
			role: RoleButton,
			hex:  "#166534",
			want: map[string]string{
				VarPrimary:           "143 64% 24%",
				VarPrimaryForeground: "0 0% 100%",
				VarAccent:            "143 64% 24%",
			},
		},
		{
			name:   "button legacy",
			role:   RoleButton,
			hex:    "#166534",
			legacy: true,
			want: map[string]string{
				VarPrimary:           "143 64% 24%",
				VarPrimaryForeground: "143 10% 66%",
				VarAccent:            "143 64% 24%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, roleVars(tt.role, tt.hex, tt.legacy)); diff != "" {
				t.Errorf("roleVars mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetRoleColor_OnlyTouchesOwnVariables(t *testing.T) {
	for _, role := range Roles {
		t.Run(string(role), func(t *testing.T) {
			e, kv := newEngine(t, Options{})
			before := e.Projection()

			if err := e.SetRoleColor(role, "#9D174D"); err != nil {
				t.Fatalf("SetRoleColor error: %v", err)
			}

			owned := roleVars(role, "#9d174d", false)
			after := e.Projection()
			for _, name := range Variables {
				if _, ok := owned[name]; ok {
					if after.Var(name) != owned[name] {
						t.Errorf("--%s = %q, want %q", name, after.Var(name), owned[name])
					}
					continue
				}
				if after.Var(name) != before.Var(name) {
					t.Errorf("--%s changed from %q to %q", name, before.Var(name), after.Var(name))
				}
			}

			if got := kv.Snapshot()[role.Key()]; got != "#9d174d" {
				t.Errorf("persisted %s = %q", role.Key(), got)
			}
			if got := e.State().Colors.Get(role); got != "#9d174d" {
				t.Errorf("state color = %q", got)
			}
		})
	}
}

func TestSetRoleColor_Errors(t *testing.T) {
	e, _ := newEngine(t, Options{})

	if err := e.SetRoleColor("shadow", "#000000"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("unknown role error = %v, want ErrUnknownRole", err)
	}
	if err := e.SetRoleColor(RoleText, "white"); !errors.Is(err, color.ErrInvalidHex) {
		t.Errorf("invalid hex error = %v, want ErrInvalidHex", err)
	}
}

func TestRestore_IndependentFallbacks(t *testing.T) {
	kv := store.NewMemoryStore()
	kv.SetMany(map[string]string{
		KeyThemeMode:            "light",
		KeyPrimaryColor:         "#1A73E8",
		RoleSecondary.Key():     "#123456",
		RoleText.Key():          "#abcdef",
		RoleBorder.Key():        "definitely not a color",
		RoleButton.Key():        "#654321",
		"multidrop-color-other": "#ffffff",
	})

	e := Open(kv, zerolog.Nop(), Options{})

	want := State{
		Mode:    Light,
		Primary: "#1a73e8",
		Colors: RoleColors{
			Secondary: "#123456",
			Text:      "#abcdef",
			Border:    "#374151",
			Button:    "#654321",
		},
	}
	if diff := cmp.Diff(want, e.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if got := e.Projection().Var(VarBorder); got != "217 19% 27%" {
		t.Errorf("--border = %q, want default border projection", got)
	}
}

func TestRestore_CorruptModeAndUnreadableStore(t *testing.T) {
	kv := store.NewMemoryStore()
	kv.Set(KeyThemeMode, "sepia")
	e := Open(kv, zerolog.Nop(), Options{})
	if e.State().Mode != Dark {
		t.Errorf("corrupt mode restored as %q, want dark", e.State().Mode)
	}

	e = Open(brokenStore{store.NewMemoryStore()}, zerolog.Nop(), Options{})
	if diff := cmp.Diff(DefaultState(), e.State()); diff != "" {
		t.Errorf("unreadable store should yield defaults (-want +got):\n%s", diff)
	}
}

func TestRestore_ProjectionOrder(t *testing.T) {
	kv := store.NewMemoryStore()
	kv.SetMany(map[string]string{
		KeyPrimaryColor:  "#1a73e8",
		RoleButton.Key(): "#166534",
	})

	e := Open(kv, zerolog.Nop(), Options{})

	// Roles are applied after the primary derivation.
	if got := e.Projection().Var(VarPrimary); got != "143 64% 24%" {
		t.Errorf("--primary = %q, want button color", got)
	}
	if got := e.Projection().Gradient.From; got != "#1a73e8" {
		t.Errorf("gradient starts at %q, want primary", got)
	}
}

func TestPersist(t *testing.T) {
	kv := store.NewMemoryStore()
	e := New(kv, zerolog.Nop(), Options{})

	if err := e.Persist(); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	want := map[string]string{
		"multidrop-theme-mode":      "dark",
		"multidrop-primary-color":   "#1e8e3e",
		"multidrop-color-secondary": "#1f2937",
		"multidrop-color-text":      "#f9fafb",
		"multidrop-color-border":    "#374151",
		"multidrop-color-button":    "#166534",
	}
	if diff := cmp.Diff(want, kv.Snapshot()); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}
}

func TestFailingStore_NothingChanges(t *testing.T) {
	boom := errors.New("read-only filesystem")
	e := New(failingStore{err: boom}, zerolog.Nop(), Options{})
	state, proj := e.State(), e.Projection()

	if err := e.SetPrimaryColor("#1a73e8"); !errors.Is(err, boom) {
		t.Errorf("SetPrimaryColor error = %v", err)
	}
	if err := e.SetRoleColor(RoleText, "#000000"); !errors.Is(err, boom) {
		t.Errorf("SetRoleColor error = %v", err)
	}
	if _, err := e.ToggleMode(); !errors.Is(err, boom) {
		t.Errorf("ToggleMode error = %v", err)
	}
	if err := e.Reset(); !errors.Is(err, boom) {
		t.Errorf("Reset error = %v", err)
	}

	if diff := cmp.Diff(state, e.State()); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(proj, e.Projection()); diff != "" {
		t.Errorf("projection changed (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	e, kv := newEngine(t, Options{})
	e.SetPrimaryColor("#ff6d01")
	e.SetRoleColor(RoleBorder, "#A16207")
	e.ToggleMode()

	if err := e.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	if diff := cmp.Diff(DefaultState(), e.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultState().Entries(), kv.Snapshot()); diff != "" {
		t.Errorf("stored mismatch (-want +got):\n%s", diff)
	}
	fresh := New(store.NewMemoryStore(), zerolog.Nop(), Options{})
	if diff := cmp.Diff(fresh.Projection(), e.Projection()); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestOnChange(t *testing.T) {
	var changes []Change
	e, _ := newEngine(t, Options{OnChange: func(c Change) { changes = append(changes, c) }})

	e.SetPrimaryColor("#1a73e8")
	e.SetRoleColor(RoleText, "#000")
	e.ToggleMode()
	e.SetPrimaryColor("nope")
	e.Reset()

	want := []Change{
		{Action: ActionSetPrimary, Key: KeyPrimaryColor, Value: "#1a73e8", Previous: "#1e8e3e"},
		{Action: ActionSetColor, Key: "multidrop-color-text", Value: "#000000", Previous: "#f9fafb"},
		{Action: ActionSetMode, Key: KeyThemeMode, Value: "light", Previous: "dark"},
		{Action: ActionReset},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectionIsACopy(t *testing.T) {
	e, _ := newEngine(t, Options{})

	p := e.Projection()
	p.Vars[VarPrimary] = "tampered"

	if e.Projection().Var(VarPrimary) == "tampered" {
		t.Error("Projection() exposes internal map")
	}
}

func TestProjectionCSS(t *testing.T) {
	e, _ := newEngine(t, Options{})
	css := e.Projection().CSS()

	for _, want := range []string{
		":root.dark-theme {",
		"  --background: 214 12% 5.9%;",
		"  --border: 217 19% 27%;",
		"header {\n  background: linear-gradient(to right, #1e8e3e, #1a7935);",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q:\n%s", want, css)
		}
	}
}

func TestDerive_MatchesEngine(t *testing.T) {
	for _, legacy := range []bool{false, true} {
		opts := Options{LegacyContrast: legacy}
		e, _ := newEngine(t, opts)
		if err := e.SetRoleColor(RoleButton, "#fef08a"); err != nil {
			t.Fatalf("SetRoleColor: %v", err)
		}
		if diff := cmp.Diff(e.Projection(), Derive(e.State(), opts)); diff != "" {
			t.Errorf("legacy=%v: Derive mismatch (-engine +derive):\n%s", legacy, diff)
		}
	}

	s := DefaultState()
	s.Colors = s.Colors.With(RoleButton, "#fef08a")
	modern := Derive(s, Options{}).Var(VarPrimaryForeground)
	legacy := Derive(s, Options{LegacyContrast: true}).Var(VarPrimaryForeground)
	if modern == legacy {
		t.Errorf("expected legacy contrast to change the button foreground, both %q", modern)
	}
}
