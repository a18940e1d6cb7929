package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/vietdv277/stratus/pkg/types"
)

// ListVPCs returns all available VPCs with empty subnet maps.
func (c *Client) ListVPCs() ([]*types.VPC, error) {
	output, err := c.EC2.DescribeVpcs(c.ctx, &ec2.DescribeVpcsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPCs: %w", err)
	}

	var vpcs []*types.VPC
	for _, v := range output.Vpcs {
		vpc := toVPC(v)
		vpcs = append(vpcs, &vpc)
	}

	return vpcs, nil
}

// GetVPC returns a single VPC by ID.
func (c *Client) GetVPC(vpcID string) (*types.VPC, error) {
	output, err := c.EC2.DescribeVpcs(c.ctx, &ec2.DescribeVpcsInput{
		VpcIds: []string{vpcID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe VPC %s: %w", vpcID, err)
	}

	if len(output.Vpcs) == 0 {
		return nil, fmt.Errorf("VPC not found: %s", vpcID)
	}

	vpc := toVPC(output.Vpcs[0])
	return &vpc, nil
}

// ListSubnets returns all available subnets in the region.
func (c *Client) ListSubnets() ([]types.Subnet, error) {
	output, err := c.EC2.DescribeSubnets(c.ctx, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnets: %w", err)
	}

	var subnets []types.Subnet
	for _, s := range output.Subnets {
		subnets = append(subnets, toSubnet(s))
	}

	return subnets, nil
}

// GetSubnet returns a single subnet by ID.
func (c *Client) GetSubnet(subnetID string) (*types.Subnet, error) {
	output, err := c.EC2.DescribeSubnets(c.ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{subnetID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnet %s: %w", subnetID, err)
	}

	if len(output.Subnets) == 0 {
		return nil, fmt.Errorf("subnet not found: %s", subnetID)
	}

	subnet := toSubnet(output.Subnets[0])
	return &subnet, nil
}

// toVPC converts an EC2 VPC to our VPC type
func toVPC(v ec2types.Vpc) types.VPC {
	vpc := types.VPC{
		ID:      deref(v.VpcId),
		CIDR:    deref(v.CidrBlock),
		Subnets: make(map[string]*types.Subnet),
	}

	for _, tag := range v.Tags {
		if deref(tag.Key) == "Name" {
			vpc.Name = deref(tag.Value)
			break
		}
	}

	return vpc
}

// toSubnet converts an EC2 Subnet to our Subnet type
func toSubnet(s ec2types.Subnet) types.Subnet {
	subnet := types.Subnet{
		ID:    deref(s.SubnetId),
		VPCID: deref(s.VpcId),
		CIDR:  deref(s.CidrBlock),
		AZ:    deref(s.AvailabilityZone),
	}

	for _, tag := range s.Tags {
		if deref(tag.Key) == "Name" {
			subnet.Name = deref(tag.Value)
			break
		}
	}

	return subnet
}
