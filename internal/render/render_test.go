package render_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"dscpctl/internal/ipc"
	"dscpctl/internal/render"
)

func sampleResults() []ipc.ShowConfigResponse {
	return []ipc.ShowConfigResponse{
		{
			Instance: 0,
			Config: &ipc.ConfigState{
				Marking:  &ipc.Marking{Flag: 2, Mark: 46},
				Prefixes: []string{"10.0.0.0/8"},
			},
		},
	}
}

func TestShowTreeLabels(t *testing.T) {
	out := render.ShowTree(sampleResults(), render.Options{})

	for _, want := range []string{
		"View Configs",
		"Instance 0",
		"Marking",
		"Flag: Always",
		"Mark: 46 (0x2e)",
		"Prefixes",
		"0: 10.0.0.0/8",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}

	// Hierarchy: root precedes instance, instance precedes groups, groups
	// precede their leaves.
	order := []string{"View Configs", "Instance 0", "Marking", "Flag: Always", "Mark: 46 (0x2e)", "Prefixes", "0: 10.0.0.0/8"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx <= last {
			t.Fatalf("marker %q out of order in tree:\n%s", marker, out)
		}
		last = idx
	}
}

func TestShowTreeOmitsMarkingWithoutPolicy(t *testing.T) {
	results := []ipc.ShowConfigResponse{
		{Instance: 3, Config: &ipc.ConfigState{Prefixes: []string{}}},
	}
	out := render.ShowTree(results, render.Options{})
	if strings.Contains(out, "Marking") {
		t.Fatalf("marking group must be omitted when no policy exists:\n%s", out)
	}
	if !strings.Contains(out, "Prefixes") {
		t.Fatalf("empty prefix group must keep its header:\n%s", out)
	}
}

func TestShowTreeMissingConfig(t *testing.T) {
	results := []ipc.ShowConfigResponse{{Instance: 9}}
	out := render.ShowTree(results, render.Options{})
	if !strings.Contains(out, "Instance 9") {
		t.Fatalf("instance node missing:\n%s", out)
	}
	if strings.Contains(out, "Prefixes") {
		t.Fatalf("absent config must not render groups:\n%s", out)
	}
}

func TestShowTreePrefixOrder(t *testing.T) {
	results := []ipc.ShowConfigResponse{
		{Instance: 0, Config: &ipc.ConfigState{
			Prefixes: []string{"192.168.0.0/16", "10.0.0.0/8", "2001:db8::/32"},
		}},
	}
	out := render.ShowTree(results, render.Options{})
	for i, prefix := range []string{"0: 192.168.0.0/16", "1: 10.0.0.0/8", "2: 2001:db8::/32"} {
		if !strings.Contains(out, prefix) {
			t.Errorf("prefix leaf %d missing %q:\n%s", i, prefix, out)
		}
	}
	if strings.Index(out, "0: 192.168.0.0/16") > strings.Index(out, "1: 10.0.0.0/8") {
		t.Fatalf("prefixes reordered:\n%s", out)
	}
}

func TestFlagLabels(t *testing.T) {
	cases := map[uint32]string{
		0: "Never",
		1: "Default (only if original DSCP is 0)",
		2: "Always",
		7: "Unknown (7)",
	}
	for flag, want := range cases {
		if got := render.FlagLabel(flag); got != want {
			t.Errorf("FlagLabel(%d) = %q, want %q", flag, got, want)
		}
	}
}

func TestShowJSONRoundTrip(t *testing.T) {
	input := []ipc.ShowConfigResponse{
		{
			Instance: 1,
			Config: &ipc.ConfigState{
				Marking:  &ipc.Marking{Flag: 1, Mark: 8},
				Prefixes: []string{"10.0.0.0/8", "172.16.0.0/12"},
			},
		},
		{Instance: 2, Config: &ipc.ConfigState{Prefixes: []string{}}},
		{Instance: 5},
	}

	out, err := render.ShowJSON(input)
	if err != nil {
		t.Fatalf("ShowJSON: %v", err)
	}

	var parsed []ipc.ShowConfigResponse
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("round-trip unmarshal: %v", err)
	}
	if !reflect.DeepEqual(parsed, input) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", parsed, input)
	}
}

func TestRenderingIsCanonical(t *testing.T) {
	results := sampleResults()

	first, err := render.Show(results, render.FormatJSON, render.Options{})
	if err != nil {
		t.Fatalf("Show json: %v", err)
	}
	second, err := render.Show(results, render.FormatJSON, render.Options{})
	if err != nil {
		t.Fatalf("Show json: %v", err)
	}
	if first != second {
		t.Fatal("structured output must be byte-identical across runs")
	}

	tree1, _ := render.Show(results, render.FormatTree, render.Options{})
	tree2, _ := render.Show(results, render.FormatTree, render.Options{})
	if tree1 != tree2 {
		t.Fatal("tree output must be byte-identical across runs")
	}
}

func TestConfigListTree(t *testing.T) {
	items := []ipc.InstanceConfigs{
		{Instance: 0, Configs: []string{"edge", "core"}},
		{Instance: 1, Configs: nil},
	}
	out := render.ConfigListTree(items, render.Options{})
	for _, want := range []string{"List Configs", "Instance 0", "edge", "core", "Instance 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("config list tree missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "edge") > strings.Index(out, "core") {
		t.Fatalf("config names reordered:\n%s", out)
	}
}

func TestConfigListJSONRoundTrip(t *testing.T) {
	items := []ipc.InstanceConfigs{{Instance: 4, Configs: []string{"edge"}}}
	out, err := render.ConfigListJSON(items)
	if err != nil {
		t.Fatalf("ConfigListJSON: %v", err)
	}
	var parsed []ipc.InstanceConfigs
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("round-trip unmarshal: %v", err)
	}
	if !reflect.DeepEqual(parsed, items) {
		t.Fatalf("round trip mismatch: %+v vs %+v", parsed, items)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := render.ParseFormat("tree"); err != nil || f != render.FormatTree {
		t.Fatalf("ParseFormat(tree) = %v, %v", f, err)
	}
	if f, err := render.ParseFormat("json"); err != nil || f != render.FormatJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := render.ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
