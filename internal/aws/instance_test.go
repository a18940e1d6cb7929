package aws

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/stratus/pkg/types"
)

func TestToInstance(t *testing.T) {
	launched := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	in := ec2types.Instance{
		InstanceId:         aws.String("i-0abc"),
		State:              &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
		InstanceType:       ec2types.InstanceTypeT3Micro,
		Architecture:       ec2types.ArchitectureValuesX8664,
		VirtualizationType: ec2types.VirtualizationTypeHvm,
		PrivateIpAddress:   aws.String("10.0.1.5"),
		PublicIpAddress:    aws.String("54.1.2.3"),
		VpcId:              aws.String("vpc-1"),
		SubnetId:           aws.String("subnet-1"),
		Platform:           ec2types.PlatformValuesWindows,
		InstanceLifecycle:  ec2types.InstanceLifecycleTypeSpot,
		Monitoring:         &ec2types.Monitoring{State: ec2types.MonitoringStateEnabled},
		KeyName:            aws.String("deploy-key"),
		ImageId:            aws.String("ami-123"),
		LaunchTime:         &launched,
		SecurityGroups: []ec2types.GroupIdentifier{
			{GroupName: aws.String("sg-web")},
			{GroupName: aws.String("sg-ssh")},
		},
		Tags: []ec2types.Tag{
			{Key: aws.String("env"), Value: aws.String("prod")},
			{Key: aws.String("Name"), Value: aws.String("web-1")},
		},
	}

	got := toInstance(in)

	assert.Equal(t, "i-0abc", got.ID)
	assert.Equal(t, "web-1", got.Name)
	assert.Equal(t, types.StateRunning, got.State)
	assert.Equal(t, "t3.micro", got.Type)
	assert.Equal(t, "x86_64", got.Architecture)
	assert.Equal(t, "hvm", got.Virtualization)
	assert.Equal(t, "10.0.1.5", got.PrivateIP.String())
	assert.Equal(t, "54.1.2.3", got.PublicIP.String())
	assert.Equal(t, "vpc-1", got.VPCID)
	assert.Equal(t, "subnet-1", got.SubnetID)
	assert.True(t, got.Windows)
	assert.True(t, got.Spot)
	assert.True(t, got.Monitoring)
	assert.Equal(t, "deploy-key", got.KeyName)
	assert.Equal(t, "ami-123", got.ImageID)
	assert.Equal(t, launched, got.LaunchTime)
	assert.Equal(t, []string{"sg-web", "sg-ssh"}, got.SecurityGroups)
	assert.True(t, got.Networked())
}

func TestToInstanceSparse(t *testing.T) {
	in := ec2types.Instance{
		InstanceId: aws.String("i-bare"),
		State:      &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
	}

	got := toInstance(in)

	assert.Equal(t, "i-bare", got.ID)
	assert.Equal(t, types.StateStopped, got.State)
	assert.Empty(t, got.Name)
	assert.False(t, got.PrivateIP.IsValid())
	assert.False(t, got.PublicIP.IsValid())
	assert.False(t, got.Windows)
	assert.False(t, got.Spot)
	assert.False(t, got.Monitoring)
	assert.False(t, got.Networked())
	assert.True(t, got.LaunchTime.IsZero())
}

func TestToState(t *testing.T) {
	tests := []struct {
		in   ec2types.InstanceStateName
		want types.InstanceState
	}{
		{ec2types.InstanceStateNamePending, types.StatePending},
		{ec2types.InstanceStateNameRunning, types.StateRunning},
		{ec2types.InstanceStateNameStopping, types.StateStopping},
		{ec2types.InstanceStateNameStopped, types.StateStopped},
		{ec2types.InstanceStateNameShuttingDown, types.StateShuttingDown},
		{ec2types.InstanceStateNameTerminated, types.StateTerminated},
		{ec2types.InstanceStateName("rebooting"), types.StateUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toState(&ec2types.InstanceState{Name: tt.in}))
	}

	assert.Equal(t, types.StateUnknown, toState(nil))
}

func TestParseAddr(t *testing.T) {
	assert.False(t, parseAddr(nil).IsValid())
	assert.False(t, parseAddr(aws.String("not-an-ip")).IsValid())
	assert.Equal(t, "10.0.1.5", parseAddr(aws.String("10.0.1.5")).String())
}

type stubHTTPClient func(*http.Request) (*http.Response, error)

func (f stubHTTPClient) Do(r *http.Request) (*http.Response, error) { return f(r) }

// stubEC2Client builds a Client whose EC2 calls hit a canned HTTP response
// instead of the real API.
func stubEC2Client(status int, body string) *Client {
	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: aws.AnonymousCredentials{},
		Retryer:     func() aws.Retryer { return aws.NopRetryer{} },
		HTTPClient: stubHTTPClient(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(body)),
			}, nil
		}),
	}
	return &Client{EC2: ec2.NewFromConfig(cfg), ctx: context.Background()}
}

func TestGetInstanceAPIErrorPropagates(t *testing.T) {
	client := stubEC2Client(403,
		`<Response><Errors><Error><Code>AuthFailure</Code><Message>not authorized</Message></Error></Errors><RequestID>req-1</RequestID></Response>`)

	_, err := client.GetInstance("i-0abc")
	require.Error(t, err)
	// An auth or throttling failure is not a missing instance.
	assert.NotErrorIs(t, err, ErrInstanceNotFound)
	assert.Contains(t, err.Error(), "i-0abc")
}

func TestGetInstanceNotFound(t *testing.T) {
	client := stubEC2Client(200,
		`<DescribeInstancesResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/"><requestId>req-2</requestId><reservationSet/></DescribeInstancesResponse>`)

	inst, err := client.GetInstance("i-gone")
	require.Error(t, err)
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, ErrInstanceNotFound)
}

func TestStateReasonAndMonitoringVariants(t *testing.T) {
	in := ec2types.Instance{
		InstanceId:  aws.String("i-x"),
		State:       &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
		StateReason: &ec2types.StateReason{Message: aws.String("User initiated shutdown")},
		Monitoring:  &ec2types.Monitoring{State: ec2types.MonitoringStateDisabled},
	}

	got := toInstance(in)
	assert.Equal(t, "User initiated shutdown", got.StateReason)
	assert.False(t, got.Monitoring)
}
