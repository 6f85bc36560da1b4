package color

// Preset is a named color offered as a one-click choice.
type Preset struct {
	Name string
	Hex  string
}

// PrimaryPresets are the accent colors offered for the primary slot.
var PrimaryPresets = []Preset{
	{Name: "green", Hex: "#1e8e3e"},
	{Name: "blue", Hex: "#1a73e8"},
	{Name: "red", Hex: "#d93025"},
	{Name: "purple", Hex: "#9334ea"},
	{Name: "orange", Hex: "#ff6d01"},
	{Name: "graphite", Hex: "#202124"},
}

// RolePresets are the colors offered for the secondary, text, border and
// button slots.
var RolePresets = []Preset{
	{Name: "dark-gray", Hex: "#1F2937"},
	{Name: "gray", Hex: "#374151"},
	{Name: "dark-blue", Hex: "#22333b"},
	{Name: "blue", Hex: "#1E3A8A"},
	{Name: "teal", Hex: "#127369"},
	{Name: "green", Hex: "#166534"},
	{Name: "amber", Hex: "#A16207"},
	{Name: "magenta", Hex: "#9D174D"},
	{Name: "dark-pink", Hex: "#831843"},
	{Name: "brown", Hex: "#723122"},
}

// LookupPreset resolves a preset name against list, case-sensitively.
func LookupPreset(list []Preset, name string) (Preset, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
