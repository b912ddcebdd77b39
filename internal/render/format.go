package render

import "fmt"

// Format selects how results are rendered.
type Format int

const (
	// FormatTree renders a human-readable hierarchy.
	FormatTree Format = iota
	// FormatJSON renders a machine-parseable document.
	FormatJSON
)

// ParseFormat maps a --format flag value onto a Format.
func ParseFormat(value string) (Format, error) {
	switch value {
	case "tree", "":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatTree, fmt.Errorf("unknown output format %q (expected tree or json)", value)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "tree"
	}
}
