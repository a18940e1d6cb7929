package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

// ErrUnresolvedTopology indicates an instance or subnet referencing a VPC
// or subnet missing from the snapshot. The topology listing and the
// instance listing were taken moments apart, so a dangling reference means
// the snapshot is torn and the report cannot be trusted.
var ErrUnresolvedTopology = errors.New("unresolved topology reference")

// BuildTopology attaches subnets to their owning VPCs and returns the VPCs
// keyed by ID.
func BuildTopology(vpcs []*types.VPC, subnets []types.Subnet) (map[string]*types.VPC, error) {
	byID := make(map[string]*types.VPC, len(vpcs))
	for _, v := range vpcs {
		if v.Subnets == nil {
			v.Subnets = make(map[string]*types.Subnet)
		}
		byID[v.ID] = v
	}

	for i := range subnets {
		s := subnets[i]
		v, ok := byID[s.VPCID]
		if !ok {
			return nil, fmt.Errorf("%w: subnet %s references unknown VPC %s", ErrUnresolvedTopology, s.ID, s.VPCID)
		}
		v.Subnets[s.ID] = &s
	}

	return byID, nil
}

// Group partitions instances into their owning subnets, returning the ones
// without a VPC as the classic bucket. Every instance lands in exactly one
// place.
//
// A non-empty filter is matched case-insensitively as a substring of the
// instance name before grouping; nameless instances never match an active
// filter.
func Group(instances []types.Instance, vpcs map[string]*types.VPC, filter string) ([]types.Instance, error) {
	needle := strings.ToLower(filter)

	var classic []types.Instance
	for _, inst := range instances {
		if needle != "" {
			if inst.Name == "" || !strings.Contains(strings.ToLower(inst.Name), needle) {
				continue
			}
		}

		if !inst.Networked() {
			classic = append(classic, inst)
			continue
		}

		v, ok := vpcs[inst.VPCID]
		if !ok {
			return nil, fmt.Errorf("%w: instance %s references unknown VPC %s", ErrUnresolvedTopology, inst.ID, inst.VPCID)
		}

		s, ok := v.Subnets[inst.SubnetID]
		if !ok {
			return nil, fmt.Errorf("%w: instance %s references unknown subnet %s", ErrUnresolvedTopology, inst.ID, inst.SubnetID)
		}

		s.Instances = append(s.Instances, inst)
	}

	return classic, nil
}
