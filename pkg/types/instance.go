package types

import (
	"net/netip"
	"time"
)

// InstanceState is the lifecycle state of an EC2 instance.
type InstanceState string

const (
	StatePending      InstanceState = "pending"
	StateRunning      InstanceState = "running"
	StateStopping     InstanceState = "stopping"
	StateStopped      InstanceState = "stopped"
	StateShuttingDown InstanceState = "shutting-down"
	StateTerminated   InstanceState = "terminated"
	StateUnknown      InstanceState = "unknown"
)

// Instance is a point-in-time snapshot of an EC2 instance.
//
// Optional string fields are empty when the API did not return them.
// Optional addresses are the zero netip.Addr, which also gives absent
// addresses a stable sort position before any real address.
type Instance struct {
	ID             string
	Name           string // Name tag, empty when untagged
	State          InstanceState
	StateReason    string
	Type           string
	LaunchTime     time.Time
	Architecture   string
	Virtualization string
	PrivateIP      netip.Addr
	PublicIP       netip.Addr
	VPCID          string
	SubnetID       string
	Windows        bool
	Spot           bool
	Monitoring     bool
	SecurityGroups []string
	KeyName        string
	ImageID        string
}

// Networked reports whether the instance belongs to a VPC. Instances
// without one run in EC2 Classic mode and are grouped separately.
func (i *Instance) Networked() bool {
	return i.VPCID != ""
}
