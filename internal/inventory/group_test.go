package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/stratus/pkg/types"
)

func testTopology(t *testing.T) map[string]*types.VPC {
	t.Helper()

	vpcs := []*types.VPC{
		{ID: "vpc-a", Name: "prod", CIDR: "10.0.0.0/16"},
		{ID: "vpc-b", CIDR: "172.16.0.0/16"},
	}
	subnets := []types.Subnet{
		{ID: "subnet-a1", VPCID: "vpc-a", CIDR: "10.0.1.0/24", AZ: "us-east-1a"},
		{ID: "subnet-a2", VPCID: "vpc-a", CIDR: "10.0.2.0/24", AZ: "us-east-1b"},
		{ID: "subnet-b1", VPCID: "vpc-b", CIDR: "172.16.1.0/24", AZ: "us-east-1c"},
	}

	topology, err := BuildTopology(vpcs, subnets)
	require.NoError(t, err)
	return topology
}

func TestBuildTopology(t *testing.T) {
	topology := testTopology(t)

	require.Len(t, topology, 2)
	assert.Len(t, topology["vpc-a"].Subnets, 2)
	assert.Len(t, topology["vpc-b"].Subnets, 1)
	assert.Equal(t, "10.0.1.0/24", topology["vpc-a"].Subnets["subnet-a1"].CIDR)
}

func TestBuildTopologyOrphanSubnet(t *testing.T) {
	vpcs := []*types.VPC{{ID: "vpc-a", CIDR: "10.0.0.0/16"}}
	subnets := []types.Subnet{{ID: "subnet-x", VPCID: "vpc-gone", CIDR: "10.9.0.0/24"}}

	_, err := BuildTopology(vpcs, subnets)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedTopology)
}

func TestGroupIsPartition(t *testing.T) {
	topology := testTopology(t)

	instances := []types.Instance{
		{ID: "i-1", Name: "web-1", VPCID: "vpc-a", SubnetID: "subnet-a1"},
		{ID: "i-2", Name: "web-2", VPCID: "vpc-a", SubnetID: "subnet-a1"},
		{ID: "i-3", Name: "db-1", VPCID: "vpc-a", SubnetID: "subnet-a2"},
		{ID: "i-4", Name: "legacy-1", VPCID: "vpc-b", SubnetID: "subnet-b1"},
		{ID: "i-5", Name: "old-school"},
		{ID: "i-6"},
	}

	classic, err := Group(instances, topology, "")
	require.NoError(t, err)

	grouped := len(classic)
	for _, v := range topology {
		for _, s := range v.Subnets {
			grouped += len(s.Instances)
		}
	}
	assert.Equal(t, len(instances), grouped)

	assert.Len(t, classic, 2)
	assert.Len(t, topology["vpc-a"].Subnets["subnet-a1"].Instances, 2)
	assert.Len(t, topology["vpc-a"].Subnets["subnet-a2"].Instances, 1)
	assert.Len(t, topology["vpc-b"].Subnets["subnet-b1"].Instances, 1)
}

func TestGroupUnknownVPC(t *testing.T) {
	topology := testTopology(t)

	_, err := Group([]types.Instance{
		{ID: "i-1", VPCID: "vpc-gone", SubnetID: "subnet-a1"},
	}, topology, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedTopology)
	assert.Contains(t, err.Error(), "i-1")
}

func TestGroupUnknownSubnet(t *testing.T) {
	topology := testTopology(t)

	_, err := Group([]types.Instance{
		{ID: "i-1", VPCID: "vpc-a", SubnetID: "subnet-gone"},
	}, topology, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedTopology)
}

func TestGroupNameFilter(t *testing.T) {
	topology := testTopology(t)

	instances := []types.Instance{
		{ID: "i-1", Name: "prod-WEB-1", VPCID: "vpc-a", SubnetID: "subnet-a1"},
		{ID: "i-2", Name: "db-1", VPCID: "vpc-a", SubnetID: "subnet-a1"},
		{ID: "i-3", Name: "web-classic"},
		{ID: "i-4"}, // nameless never matches an active filter
	}

	classic, err := Group(instances, topology, "web")
	require.NoError(t, err)

	assert.Len(t, classic, 1)
	assert.Equal(t, "i-3", classic[0].ID)

	subnet := topology["vpc-a"].Subnets["subnet-a1"]
	require.Len(t, subnet.Instances, 1)
	assert.Equal(t, "i-1", subnet.Instances[0].ID)
}

func TestGroupFilterMatchesNothing(t *testing.T) {
	topology := testTopology(t)

	instances := []types.Instance{
		{ID: "i-1", Name: "web-1", VPCID: "vpc-a", SubnetID: "subnet-a1"},
		{ID: "i-2"},
	}

	classic, err := Group(instances, topology, "no-such-instance")
	require.NoError(t, err)

	assert.Empty(t, classic)
	for _, v := range topology {
		for _, s := range v.Subnets {
			assert.Empty(t, s.Instances)
		}
	}
}
