package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"dscpctl/internal/ipc"
	"dscpctl/internal/logging"
)

var errDataplaneDown = errors.New("dataplane unavailable")

// fakeBackend serves scripted config state and records mutations.
type fakeBackend struct {
	mu      sync.Mutex
	list    []ipc.InstanceConfigs
	states  map[ipc.Target]*ipc.ConfigState
	mutated []string
	failOn  map[uint32]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		states: make(map[ipc.Target]*ipc.ConfigState),
		failOn: make(map[uint32]error),
	}
}

func (b *fakeBackend) ListConfigs() ([]ipc.InstanceConfigs, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ipc.InstanceConfigs(nil), b.list...), nil
}

func (b *fakeBackend) ShowConfig(target ipc.Target) (*ipc.ShowConfigResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failOn[target.Instance]; err != nil {
		return nil, err
	}
	resp := &ipc.ShowConfigResponse{Instance: target.Instance}
	if state, ok := b.states[target]; ok {
		copied := *state
		copied.Prefixes = append([]string(nil), state.Prefixes...)
		resp.Config = &copied
	}
	return resp, nil
}

func (b *fakeBackend) AddPrefixes(target ipc.Target, prefixes []string) error {
	return b.recordMutation("add", target, fmt.Sprintf("%v", prefixes))
}

func (b *fakeBackend) RemovePrefixes(target ipc.Target, prefixes []string) error {
	return b.recordMutation("remove", target, fmt.Sprintf("%v", prefixes))
}

func (b *fakeBackend) SetMarking(target ipc.Target, marking ipc.Marking) error {
	return b.recordMutation("set-marking", target, fmt.Sprintf("flag=%d mark=%d", marking.Flag, marking.Mark))
}

func (b *fakeBackend) recordMutation(op string, target ipc.Target, detail string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failOn[target.Instance]; err != nil {
		return err
	}
	b.mutated = append(b.mutated, fmt.Sprintf("%s %s/%d %s", op, target.ConfigName, target.Instance, detail))
	return nil
}

func (b *fakeBackend) mutations() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.mutated...)
}

// startTestService runs a real JSON-RPC server on a Unix socket and returns
// its endpoint.
func startTestService(t *testing.T, backend ipc.Backend) string {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "dscp.sock")
	endpoint := "unix://" + socket

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := ipc.NewServer(ctx, endpoint, backend, logging.NewNop())
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping CLI test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	time.Sleep(20 * time.Millisecond)
	return endpoint
}

func runCLI(t *testing.T, args []string, endpoint string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if endpoint != "" {
		args = append([]string{"--endpoint", endpoint}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
