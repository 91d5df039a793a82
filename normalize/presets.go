package normalize

import (
	"errors"
	"fmt"
)

// Presets bundle pass lists into named profiles so the command line can pick
// one with --preset instead of spelling out every pass.
//
// Usage:
//   p := normalize.DefaultPreset()  // line endings and whitespace
//   p := normalize.StrictPreset()   // plus Unicode NFC and tab expansion
//   p := normalize.MinimalPreset()  // only a final newline

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named, ordered list of passes and the options they run with.
type Preset struct {
	Name     string   // human-readable identifier (e.g., "default", "strict")
	Passes   []string // pass names, applied in order
	TabWidth int      // columns per tab stop for expand-tabs
}

func DefaultPreset() Preset {
	return Preset{
		Name:     "default",
		Passes:   []string{"crlf", "trim-trailing", "trim-blank-lines", "final-newline"},
		TabWidth: DefaultOptions().TabWidth,
	}
}

// StrictPreset extends DefaultPreset with NFC normalization and tab
// expansion. NFC runs first so later passes see composed text.
func StrictPreset() Preset {
	p := DefaultPreset()
	p.Name = "strict"
	p.Passes = []string{"nfc", "crlf", "expand-tabs", "trim-trailing", "trim-blank-lines", "final-newline"}
	p.TabWidth = 4
	return p
}

// MinimalPreset only guarantees a final newline.
func MinimalPreset() Preset {
	p := DefaultPreset()
	p.Name = "minimal"
	p.Passes = []string{"final-newline"}
	return p
}

// GetPresetByName looks up a preset by its identifier.
func GetPresetByName(name string) (Preset, error) {
	switch name {
	case "default", "":
		return DefaultPreset(), nil
	case "strict":
		return StrictPreset(), nil
	case "minimal":
		return MinimalPreset(), nil
	default:
		return Preset{}, fmt.Errorf("%w: %q (valid: default, strict, minimal)", ErrUnknownPreset, name)
	}
}

// ApplyPreset merges preset into target. Only fields set in preset override
// target, so explicit settings can be layered over a named preset.
func ApplyPreset(target *Preset, preset Preset) {
	if preset.Name != "" {
		target.Name = preset.Name
	}
	if len(preset.Passes) > 0 {
		target.Passes = append([]string(nil), preset.Passes...)
	}
	if preset.TabWidth > 0 {
		target.TabWidth = preset.TabWidth
	}
}

// Build resolves the preset's pass names.
func (p Preset) Build() ([]Pass, error) {
	return Build(p.Passes, Options{TabWidth: p.TabWidth})
}
