package aws

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/vietdv277/stratus/pkg/types"
)

// ErrInstanceNotFound is returned when an instance ID does not resolve.
var ErrInstanceNotFound = errors.New("instance not found")

// ListInstancesInput contains parameters for listing EC2 instances
type ListInstancesInput struct {
	States []string
}

// ListInstances returns all instances in the region, following pagination.
// With no state filter every lifecycle state is included, terminated ones too.
func (c *Client) ListInstances(input *ListInstancesInput) ([]types.Instance, error) {
	if input == nil {
		input = &ListInstancesInput{}
	}

	describeInput := &ec2.DescribeInstancesInput{}

	if len(input.States) > 0 {
		describeInput.Filters = []ec2types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: input.States,
			},
		}
	}

	var instances []types.Instance

	paginator := ec2.NewDescribeInstancesPaginator(c.EC2, describeInput)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(c.ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}

		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				instances = append(instances, toInstance(inst))
			}
		}
	}

	return instances, nil
}

// GetInstance returns a single instance by ID.
func (c *Client) GetInstance(id string) (*types.Instance, error) {
	output, err := c.EC2.DescribeInstances(c.ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instance %s: %w", id, err)
	}

	if len(output.Reservations) == 0 || len(output.Reservations[0].Instances) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, id)
	}

	inst := toInstance(output.Reservations[0].Instances[0])
	return &inst, nil
}

// DescribeImage returns the description of an AMI. The lookup can fail
// independently of the instance fetch (deregistered or cross-account
// images), so callers treat errors as recoverable.
func (c *Client) DescribeImage(imageID string) (string, error) {
	output, err := c.EC2.DescribeImages(c.ctx, &ec2.DescribeImagesInput{
		ImageIds: []string{imageID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe image %s: %w", imageID, err)
	}

	if len(output.Images) == 0 {
		return "", fmt.Errorf("image not found: %s", imageID)
	}

	return deref(output.Images[0].Description), nil
}

// toInstance converts an EC2 API instance to our Instance type
func toInstance(i ec2types.Instance) types.Instance {
	inst := types.Instance{
		ID:             deref(i.InstanceId),
		State:          toState(i.State),
		Type:           string(i.InstanceType),
		Architecture:   string(i.Architecture),
		Virtualization: string(i.VirtualizationType),
		PrivateIP:      parseAddr(i.PrivateIpAddress),
		PublicIP:       parseAddr(i.PublicIpAddress),
		VPCID:          deref(i.VpcId),
		SubnetID:       deref(i.SubnetId),
		Windows:        i.Platform == ec2types.PlatformValuesWindows,
		Spot:           i.InstanceLifecycle == ec2types.InstanceLifecycleTypeSpot,
		KeyName:        deref(i.KeyName),
		ImageID:        deref(i.ImageId),
	}

	if i.StateReason != nil {
		inst.StateReason = deref(i.StateReason.Message)
	}

	if i.LaunchTime != nil {
		inst.LaunchTime = *i.LaunchTime
	}

	if i.Monitoring != nil {
		switch i.Monitoring.State {
		case ec2types.MonitoringStateEnabled, ec2types.MonitoringStatePending:
			inst.Monitoring = true
		}
	}

	for _, sg := range i.SecurityGroups {
		inst.SecurityGroups = append(inst.SecurityGroups, deref(sg.GroupName))
	}

	for _, tag := range i.Tags {
		if deref(tag.Key) == "Name" {
			inst.Name = deref(tag.Value)
			break
		}
	}

	return inst
}

// toState converts the EC2 instance state to our InstanceState
func toState(s *ec2types.InstanceState) types.InstanceState {
	if s == nil {
		return types.StateUnknown
	}

	switch s.Name {
	case ec2types.InstanceStateNamePending:
		return types.StatePending
	case ec2types.InstanceStateNameRunning:
		return types.StateRunning
	case ec2types.InstanceStateNameStopping:
		return types.StateStopping
	case ec2types.InstanceStateNameStopped:
		return types.StateStopped
	case ec2types.InstanceStateNameShuttingDown:
		return types.StateShuttingDown
	case ec2types.InstanceStateNameTerminated:
		return types.StateTerminated
	default:
		return types.StateUnknown
	}
}

// parseAddr parses an optional IP address string. Absent or malformed
// addresses become the zero Addr rather than failing the conversion.
func parseAddr(s *string) netip.Addr {
	if s == nil {
		return netip.Addr{}
	}

	addr, err := netip.ParseAddr(*s)
	if err != nil {
		return netip.Addr{}
	}
	return addr
}
