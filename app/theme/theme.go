package theme

// Theme is the display mode of the page. The zero value is Light.
type Theme uint8

const (
	Light Theme = iota
	Dark
)

// Default is used when no valid preference is stored.
const Default = Light

// String returns the persisted and document-class form: "light" or "dark".
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts exactly "light" or "dark".
func Parse(s string) (Theme, bool) {
	switch s {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Default, false
	}
}

// All returns every theme in declaration order.
func All() []Theme {
	return []Theme{Light, Dark}
}
