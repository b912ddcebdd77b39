package main

import "testing"

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	want := map[string]bool{
		"show":        false,
		"list":        false,
		"prefix":      false,
		"set-marking": false,
		"config":      false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"endpoint", "config", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	out, _, err := runCLI(t, []string{"--help"}, "")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	requireContains(t, out, "dscpctl")
	requireContains(t, out, "show")
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := runCLI(t, []string{"frobnicate"}, "")
	if err == nil {
		t.Fatal("expected unknown command error")
	}
}
