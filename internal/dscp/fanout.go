package dscp

import "dscpctl/internal/ipc"

// fanOut issues one RPC per target, strictly in the given order, one call
// in flight at a time. The first failure aborts the run and is returned as
// an *RPCError naming the failing instance; no partial result slice is
// returned. On success the responses correspond 1:1 to targets.
//
// Retry, if ever added, belongs as a decorator around call; the fail-fast
// contract across targets stays as is.
func fanOut[Req, Resp any](op string, targets []ipc.Target, build func(ipc.Target) Req, call func(Req) (Resp, error)) ([]Resp, error) {
	responses := make([]Resp, 0, len(targets))
	for _, target := range targets {
		resp, err := call(build(target))
		if err != nil {
			return nil, &RPCError{Op: op, Instance: target.Instance, Err: err}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// makeTargets pairs a config name with each instance index, preserving
// order.
func makeTargets(configName string, instances []uint32) []ipc.Target {
	targets := make([]ipc.Target, 0, len(instances))
	for _, instance := range instances {
		targets = append(targets, ipc.Target{ConfigName: configName, Instance: instance})
	}
	return targets
}
