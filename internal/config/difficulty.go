package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset selects the level a new run starts on.
// Level scaling itself is fixed; a harder preset simply skips the early levels.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// Presets lists the presets in increasing order of difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or insane)", s)
}

// StartLevel returns the level a run begins on for the preset.
func (p DifficultyPreset) StartLevel() int {
	switch p {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 5
	case DifficultyInsane:
		return 8
	default:
		return 1
	}
}
