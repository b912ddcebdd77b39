package ipc

// Target scopes a request to one configuration on one dataplane instance.
type Target struct {
	ConfigName string `json:"config_name"`
	Instance   uint32 `json:"instance"`
}

// Marking is a DSCP marking policy: when to mark and with which 6-bit value.
type Marking struct {
	Flag uint32 `json:"flag"`
	Mark uint32 `json:"mark"`
}

// ConfigState is the observed state of one configuration: an optional
// marking policy and the prefix filter in service order.
type ConfigState struct {
	Marking  *Marking `json:"marking,omitempty"`
	Prefixes []string `json:"prefixes"`
}

// ListConfigsRequest asks for every configuration known to the service.
type ListConfigsRequest struct{}

// InstanceConfigs names the configurations present on one dataplane instance.
type InstanceConfigs struct {
	Instance uint32   `json:"instance"`
	Configs  []string `json:"configs"`
}

// ListConfigsResponse lists configurations per instance, in service order.
type ListConfigsResponse struct {
	InstanceConfigs []InstanceConfigs `json:"instance_configs"`
}

// ShowConfigRequest fetches the state of one target.
type ShowConfigRequest struct {
	Target Target `json:"target"`
}

// ShowConfigResponse is the state of one target. Config is nil when the
// target has no configuration on that instance.
type ShowConfigResponse struct {
	Instance uint32       `json:"instance"`
	Config   *ConfigState `json:"config,omitempty"`
}

// AddPrefixesRequest appends prefixes to the target's input filter.
type AddPrefixesRequest struct {
	Target   Target   `json:"target"`
	Prefixes []string `json:"prefixes"`
}

// AddPrefixesResponse acknowledges an AddPrefixes call.
type AddPrefixesResponse struct{}

// RemovePrefixesRequest removes prefixes from the target's input filter.
type RemovePrefixesRequest struct {
	Target   Target   `json:"target"`
	Prefixes []string `json:"prefixes"`
}

// RemovePrefixesResponse acknowledges a RemovePrefixes call.
type RemovePrefixesResponse struct{}

// SetMarkingRequest replaces the target's marking policy.
type SetMarkingRequest struct {
	Target  Target  `json:"target"`
	Marking Marking `json:"marking"`
}

// SetMarkingResponse acknowledges a SetMarking call.
type SetMarkingResponse struct{}
