// Package dscp orchestrates DSCP control operations across dataplane
// instances.
//
// Every command runs the same pipeline: validate parameters locally,
// resolve the target instances, fan the operation out as one RPC per
// instance, and hand the collected responses to the renderer. Fan-out is
// sequential and fail-fast: the first failing instance aborts the run, and
// instances already mutated stay mutated. Operators must treat "some
// instances updated, error reported" as a valid terminal outcome; rerunning
// the command is the recovery path.
//
// All state is invocation-scoped. Nothing is cached between runs.
package dscp
