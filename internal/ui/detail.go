package ui

import (
	"fmt"
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

// Markers for conditions the detail view calls out explicitly instead of
// falling back to a generic placeholder.
const (
	MarkerNoPublicIP       = "-- public IP not allocated --"
	MarkerImageUnavailable = "-- unavailable as of now --"
	MarkerClassic          = "no VPC (classic)"
)

// RenderDetail renders the full detail block for one instance. The VPC and
// subnet may be nil (their names render as unnamed); imageOK reports
// whether the image description lookup succeeded.
func RenderDetail(inst types.Instance, vpc *types.VPC, subnet *types.Subnet, imageDesc string, imageOK bool, colored bool) string {
	var b strings.Builder

	// Identity and state
	fmt.Fprintf(&b, "%s  %s  %s %s", inst.ID, FormatName(inst.Name, nameWidth), StateGlyph(inst.State, colored), inst.State)
	if inst.State == types.StateRunning && !inst.LaunchTime.IsZero() {
		fmt.Fprintf(&b, "  since %s", inst.LaunchTime.Format("2006-01-02 15:04:05"))
	} else if inst.StateReason != "" {
		fmt.Fprintf(&b, "  (%s)", inst.StateReason)
	}
	b.WriteString("\n")

	// Topology and addresses
	if inst.Networked() {
		var vpcName, subnetName string
		if vpc != nil {
			vpcName = vpc.Name
		}
		if subnet != nil {
			subnetName = subnet.Name
		}
		fmt.Fprintf(&b, "VPC: %s  Subnet: %s\n", orUnnamed(vpcName), orUnnamed(subnetName))
	} else {
		b.WriteString(MarkerClassic)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Private IP: %s  Public IP: ", FormatIP(inst.PrivateIP))
	if inst.Networked() && !inst.PublicIP.IsValid() {
		b.WriteString(MarkerNoPublicIP)
	} else {
		b.WriteString(FormatIP(inst.PublicIP))
	}
	b.WriteString("\n")

	// Hardware and access
	fmt.Fprintf(&b, "%s [%s] %s", inst.Type, inst.Virtualization, inst.Architecture)
	if inst.Spot {
		b.WriteString("  (spot)")
	}
	if inst.Monitoring {
		b.WriteString("  (monitoring)")
	}
	if inst.Windows {
		b.WriteString("  Windows")
	} else {
		fmt.Fprintf(&b, "  key: %s", inst.KeyName)
	}
	b.WriteString("\n")

	// Image
	desc := imageDesc
	if !imageOK {
		desc = MarkerImageUnavailable
	}
	fmt.Fprintf(&b, "%s  %s\n", inst.ImageID, desc)

	// Security groups
	b.WriteString(strings.Join(inst.SecurityGroups, ", "))
	b.WriteString("\n")

	return b.String()
}

func orUnnamed(name string) string {
	if name == "" {
		return PlaceholderName
	}
	return name
}
