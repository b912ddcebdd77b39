// Package ipc carries the wire contract of the DSCP control service and the
// matching JSON-RPC client used by the CLI.
//
// It owns the request/response DTOs, endpoint parsing for Unix socket and
// TCP targets, and a server counterpart so the control service and the test
// harness can serve the same contract the client speaks. The client holds a
// single connection that is reused for every call within one invocation.
//
// Reuse these types when adding new RPC endpoints to keep the protocol
// stable and compatible with existing command implementations.
package ipc
