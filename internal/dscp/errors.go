package dscp

import "fmt"

// ValidationError reports a parameter outside its domain. It is always
// raised before any RPC is issued.
type ValidationError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %d (must be 0-%d)", e.Field, e.Value, e.Max)
}

// RPCError attributes a transport or service failure to the instance whose
// call failed. The underlying error is preserved for errors.Is/As.
type RPCError struct {
	Op       string
	Instance uint32
	Err      error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s on instance %d: %v", e.Op, e.Instance, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }
