package dscp

// resolveInstances determines the instances an operation applies to. A
// non-empty explicit list is returned verbatim: same order, no dedup, so
// fan-out order matches what the caller asked for. An empty list falls back
// to discovery via ListConfigs, in the order the service reports.
//
// Only show may pass an empty list; mutating commands require explicit
// instances at the flag-parsing layer.
func (s *Service) resolveInstances(explicit []uint32) ([]uint32, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	resp, err := s.listConfigs()
	if err != nil {
		return nil, err
	}
	instances := make([]uint32, 0, len(resp.InstanceConfigs))
	for _, ic := range resp.InstanceConfigs {
		instances = append(instances, ic.Instance)
	}
	return instances, nil
}
