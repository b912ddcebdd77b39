package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/text"

	"dscpctl/internal/ipc"
)

// Options tunes cosmetic aspects of tree rendering. Output stays canonical
// for a fixed (input, Options) pair.
type Options struct {
	// Color emphasizes instance labels with ANSI bold when the output is
	// a terminal.
	Color bool
}

// ShowTree renders show results as a three-level hierarchy: root, one node
// per instance, then the marking policy and the prefix filter. The marking
// group appears only when a policy exists; the prefix group always appears
// for a present config, even when empty.
func ShowTree(results []ipc.ShowConfigResponse, opts Options) string {
	lw := newTreeWriter()
	lw.AppendItem("View Configs")
	lw.Indent()
	for _, result := range results {
		lw.AppendItem(opts.label(fmt.Sprintf("Instance %d", result.Instance)))
		lw.Indent()
		if cfg := result.Config; cfg != nil {
			if cfg.Marking != nil {
				lw.AppendItem("Marking")
				lw.Indent()
				lw.AppendItem(fmt.Sprintf("Flag: %s", FlagLabel(cfg.Marking.Flag)))
				lw.AppendItem(fmt.Sprintf("Mark: %d (0x%02x)", cfg.Marking.Mark, cfg.Marking.Mark))
				lw.UnIndent()
			}
			lw.AppendItem("Prefixes")
			lw.Indent()
			for idx, prefix := range cfg.Prefixes {
				lw.AppendItem(fmt.Sprintf("%d: %s", idx, prefix))
			}
			lw.UnIndent()
		}
		lw.UnIndent()
	}
	lw.UnIndent()
	return lw.Render()
}

// ConfigListTree renders the config listing as a two-level hierarchy: one
// node per instance, one leaf per known configuration name.
func ConfigListTree(items []ipc.InstanceConfigs, opts Options) string {
	lw := newTreeWriter()
	lw.AppendItem("List Configs")
	lw.Indent()
	for _, item := range items {
		lw.AppendItem(opts.label(fmt.Sprintf("Instance %d", item.Instance)))
		lw.Indent()
		for _, name := range item.Configs {
			lw.AppendItem(name)
		}
		lw.UnIndent()
	}
	lw.UnIndent()
	return lw.Render()
}

// FlagLabel renders a marking flag as its fixed human label.
func FlagLabel(flag uint32) string {
	switch flag {
	case 0:
		return "Never"
	case 1:
		return "Default (only if original DSCP is 0)"
	case 2:
		return "Always"
	default:
		return fmt.Sprintf("Unknown (%d)", flag)
	}
}

func newTreeWriter() list.Writer {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	return lw
}

func (o Options) label(value string) string {
	if !o.Color {
		return value
	}
	return text.Colors{text.Bold}.Sprint(value)
}
