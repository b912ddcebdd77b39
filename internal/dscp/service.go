package dscp

import (
	"context"
	"errors"
	"log/slog"

	"dscpctl/internal/ipc"
	"dscpctl/internal/logging"
)

// Service runs DSCP control operations against a Gateway. It is built
// fresh per invocation and holds no state beyond its collaborators.
type Service struct {
	gw  Gateway
	log *slog.Logger
}

// NewService wires the orchestrator to a gateway. A nil logger disables
// diagnostics.
func NewService(gw Gateway, log *slog.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{gw: gw, log: log}
}

// ListConfigs returns the configurations known to the service, per
// instance, in service order.
func (s *Service) ListConfigs() ([]ipc.InstanceConfigs, error) {
	resp, err := s.listConfigs()
	if err != nil {
		return nil, err
	}
	return resp.InstanceConfigs, nil
}

// ShowConfig collects the state of the named config from the given
// instances, or from every known instance when none are given. Responses
// preserve query order.
func (s *Service) ShowConfig(configName string, instances []uint32) ([]ipc.ShowConfigResponse, error) {
	resolved, err := s.resolveInstances(instances)
	if err != nil {
		return nil, err
	}

	responses, err := fanOut("show config",
		makeTargets(configName, resolved),
		func(t ipc.Target) ipc.ShowConfigRequest {
			return ipc.ShowConfigRequest{Target: t}
		},
		func(req ipc.ShowConfigRequest) (*ipc.ShowConfigResponse, error) {
			s.trace("ShowConfigRequest", req)
			resp, err := s.gw.ShowConfig(req)
			if err != nil {
				return nil, err
			}
			s.debug("ShowConfigResponse", resp)
			return resp, nil
		})
	if err != nil {
		return nil, err
	}

	results := make([]ipc.ShowConfigResponse, 0, len(responses))
	for _, resp := range responses {
		if resp == nil {
			continue
		}
		results = append(results, *resp)
	}
	return results, nil
}

// AddPrefixes appends prefixes to the named config on each instance, in
// order, fail-fast.
func (s *Service) AddPrefixes(configName string, instances []uint32, prefixes []string) error {
	if err := requireInstances(instances); err != nil {
		return err
	}

	_, err := fanOut("add prefixes",
		makeTargets(configName, instances),
		func(t ipc.Target) ipc.AddPrefixesRequest {
			return ipc.AddPrefixesRequest{Target: t, Prefixes: prefixes}
		},
		func(req ipc.AddPrefixesRequest) (*ipc.AddPrefixesResponse, error) {
			s.trace("AddPrefixesRequest", req)
			resp, err := s.gw.AddPrefixes(req)
			if err != nil {
				return nil, err
			}
			s.debug("AddPrefixesResponse", resp)
			return resp, nil
		})
	return err
}

// RemovePrefixes removes prefixes from the named config on each instance,
// in order, fail-fast.
func (s *Service) RemovePrefixes(configName string, instances []uint32, prefixes []string) error {
	if err := requireInstances(instances); err != nil {
		return err
	}

	_, err := fanOut("remove prefixes",
		makeTargets(configName, instances),
		func(t ipc.Target) ipc.RemovePrefixesRequest {
			return ipc.RemovePrefixesRequest{Target: t, Prefixes: prefixes}
		},
		func(req ipc.RemovePrefixesRequest) (*ipc.RemovePrefixesResponse, error) {
			s.trace("RemovePrefixesRequest", req)
			resp, err := s.gw.RemovePrefixes(req)
			if err != nil {
				return nil, err
			}
			s.debug("RemovePrefixesResponse", resp)
			return resp, nil
		})
	return err
}

// SetMarking sets the marking policy of the named config on each instance.
// Flag and mark are validated before any instance is contacted; a
// validation failure aborts the command with zero RPCs issued.
func (s *Service) SetMarking(configName string, instances []uint32, flag, mark uint32) error {
	if err := ValidateMarking(flag, mark); err != nil {
		return err
	}
	if err := requireInstances(instances); err != nil {
		return err
	}

	_, err := fanOut("set marking",
		makeTargets(configName, instances),
		func(t ipc.Target) ipc.SetMarkingRequest {
			return ipc.SetMarkingRequest{Target: t, Marking: ipc.Marking{Flag: flag, Mark: mark}}
		},
		func(req ipc.SetMarkingRequest) (*ipc.SetMarkingResponse, error) {
			s.trace("SetMarkingRequest", req)
			resp, err := s.gw.SetMarking(req)
			if err != nil {
				return nil, err
			}
			s.debug("SetMarkingResponse", resp)
			return resp, nil
		})
	return err
}

func (s *Service) listConfigs() (*ipc.ListConfigsResponse, error) {
	req := ipc.ListConfigsRequest{}
	s.trace("ListConfigsRequest", req)
	resp, err := s.gw.ListConfigs()
	if err != nil {
		return nil, err
	}
	s.debug("ListConfigsResponse", resp)
	return resp, nil
}

func requireInstances(instances []uint32) error {
	if len(instances) == 0 {
		return errors.New("at least one dataplane instance must be specified")
	}
	return nil
}

func (s *Service) trace(msg string, payload any) {
	s.log.Log(context.Background(), logging.LevelTrace, msg, logging.Any("payload", payload))
}

func (s *Service) debug(msg string, payload any) {
	s.log.Debug(msg, logging.Any("payload", payload))
}
