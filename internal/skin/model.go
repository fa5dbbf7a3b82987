package skin

import (
	"fmt"
	"strings"
)

// ModelVariant selects the arm proportions of a skin.
type ModelVariant int

const (
	// Classic is the standard model with 4 pixel wide arms.
	Classic ModelVariant = iota
	// Slim is the model with 3 pixel wide arms.
	Slim
)

// ParseModelVariant converts user input into a ModelVariant.
//
// Accepted values (case-insensitive, surrounding spaces ignored):
//   - "", "classic", "default", "steve" -> Classic
//   - "slim", "alex" -> Slim
func ParseModelVariant(s string) (ModelVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic", "default", "steve":
		return Classic, nil
	case "slim", "alex":
		return Slim, nil
	default:
		return Classic, fmt.Errorf("unknown model variant: %q (want classic or slim)", s)
	}
}

// String returns "classic" or "slim".
func (v ModelVariant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Slim:
		return "slim"
	default:
		return fmt.Sprintf("ModelVariant(%d)", int(v))
	}
}

// FormValue returns the value the skin upload form expects in its "model"
// field: empty for Classic, "slim" for Slim.
func (v ModelVariant) FormValue() string {
	if v == Slim {
		return "slim"
	}
	return ""
}

// armWidth is the source width of an arm region.
func (v ModelVariant) armWidth() int {
	if v == Slim {
		return 3
	}
	return 4
}

// armOffset shifts the right arm so its inner edge meets the torso at x=4.
func (v ModelVariant) armOffset() int {
	if v == Slim {
		return 1
	}
	return 0
}
