package main

import (
	"fmt"
	"io"
	"net/netip"
	"os"

	"github.com/mattn/go-isatty"

	"dscpctl/internal/render"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderOptions(writer io.Writer) render.Options {
	return render.Options{Color: shouldColorize(writer)}
}

func toUint32(values []uint) []uint32 {
	out := make([]uint32, 0, len(values))
	for _, v := range values {
		out = append(out, uint32(v))
	}
	return out
}

// parsePrefixes validates prefix syntax before any connection is opened and
// returns the canonical text form. Semantic judgement (overlaps, duplicates)
// is left to the service.
func parsePrefixes(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, value := range values {
		prefix, err := netip.ParsePrefix(value)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix %q: %w", value, err)
		}
		out = append(out, prefix.String())
	}
	return out, nil
}
