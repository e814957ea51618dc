package ping

import (
	"embed"
	"fmt"
	"strings"
)

// soundFiles contains the bundled notification clips. Three WAV assets
// back the five preset names.
//
//go:embed sounds/*.wav
var soundFiles embed.FS

// Preset is a named, bundled audio clip selectable by --sound.
type Preset struct {
	Name  string `json:"name"`
	Asset string `json:"asset"`
}

// presets maps hook event names onto the bundled assets. Order here is the
// order reported by --list.
var presets = []Preset{
	{Name: "PostToolUse", Asset: "chime.wav"},
	{Name: "Stop", Asset: "bell.wav"},
	{Name: "SubagentStop", Asset: "bell.wav"},
	{Name: "TaskCompleted", Asset: "chime.wav"},
	{Name: "Notification", Asset: "ding.wav"},
}

// Presets returns the known presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the canonical preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LookupPreset finds a preset by case-insensitive name, returning the
// canonically cased entry.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// presetData reads the embedded asset backing p.
func presetData(p Preset) ([]byte, error) {
	b, err := soundFiles.ReadFile("sounds/" + p.Asset)
	if err != nil {
		return nil, fmt.Errorf("read embedded asset %s: %w", p.Asset, err)
	}
	return b, nil
}
