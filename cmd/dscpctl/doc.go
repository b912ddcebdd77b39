// Package main hosts the dscpctl CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into RPC
// calls against the DSCP control service: config inspection, prefix filter
// edits, and marking policy updates, fanned out across dataplane instances.
// It centralizes configuration resolution, endpoint selection, and logger
// setup so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
