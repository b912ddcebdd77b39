package dscp

import "dscpctl/internal/ipc"

// Gateway is the capability the orchestrator needs from the control
// service: one call per operation. The CLI backs it with ipc.Client; tests
// substitute scripted stubs.
type Gateway interface {
	ListConfigs() (*ipc.ListConfigsResponse, error)
	ShowConfig(req ipc.ShowConfigRequest) (*ipc.ShowConfigResponse, error)
	AddPrefixes(req ipc.AddPrefixesRequest) (*ipc.AddPrefixesResponse, error)
	RemovePrefixes(req ipc.RemovePrefixesRequest) (*ipc.RemovePrefixesResponse, error)
	SetMarking(req ipc.SetMarkingRequest) (*ipc.SetMarkingResponse, error)
}

var _ Gateway = (*ipc.Client)(nil)
