package board

import (
	"fmt"
	"strings"
)

// Mode selects the ruleset variant.
type Mode uint8

const (
	// Standard is circular Shatranj.
	Standard Mode = iota
	// Modern currently shares setup and movement with Standard.
	Modern
	// Citadel has its own layout, reversed radial movement and citadel squares.
	Citadel
)

// Modes lists every mode in display order.
var Modes = []Mode{Standard, Modern, Citadel}

// String returns the mode name used in notation and preferences.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Modern:
		return "modern"
	case Citadel:
		return "citadel"
	default:
		return "unknown"
	}
}

// Title returns the display title for the mode.
func (m Mode) Title() string {
	switch m {
	case Citadel:
		return "Citadel Chess"
	case Modern:
		return "Modern Circular Chess"
	default:
		return "Circular Chess (Shatranj)"
	}
}

// ParseMode parses a mode name. "shatranj" is accepted for Standard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "shatranj":
		return Standard, nil
	case "modern":
		return Modern, nil
	case "citadel":
		return Citadel, nil
	default:
		return Standard, fmt.Errorf("unknown mode: %q", s)
	}
}
