// Package render turns collected per-instance results into terminal output.
//
// Two formats exist: a human-readable tree and a machine-readable JSON
// document. Both are pure functions of their input; given the same results
// and options the output is byte-identical, so repeated invocations against
// unchanged service state diff clean.
package render
