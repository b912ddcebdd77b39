package render

import (
	"encoding/json"
	"fmt"

	"dscpctl/internal/ipc"
)

// ShowJSON serializes show results into a single JSON document preserving
// input order and every field. A consumer reading the same fields back gets
// a lossless round trip.
func ShowJSON(results []ipc.ShowConfigResponse) (string, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("encode show results: %w", err)
	}
	return string(data), nil
}

// ConfigListJSON serializes the config listing, mirroring ShowJSON for
// symmetry.
func ConfigListJSON(items []ipc.InstanceConfigs) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode config list: %w", err)
	}
	return string(data), nil
}

// Show renders show results in the requested format.
func Show(results []ipc.ShowConfigResponse, format Format, opts Options) (string, error) {
	switch format {
	case FormatJSON:
		return ShowJSON(results)
	default:
		return ShowTree(results, opts), nil
	}
}

// ConfigList renders the config listing in the requested format.
func ConfigList(items []ipc.InstanceConfigs, format Format, opts Options) (string, error) {
	switch format {
	case FormatJSON:
		return ConfigListJSON(items)
	default:
		return ConfigListTree(items, opts), nil
	}
}
