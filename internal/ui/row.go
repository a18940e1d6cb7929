package ui

import (
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

// RenderRow renders the one-line summary for an instance. Networked rows
// lead with the private IP and trail with the public one; classic rows lead
// with the public IP and trail with the architecture.
func RenderRow(inst types.Instance, networked, colored bool) string {
	var b strings.Builder

	b.WriteString(StateGlyph(inst.State, colored))
	b.WriteString(" ")

	if networked {
		b.WriteString(FormatIP(inst.PrivateIP))
	} else {
		b.WriteString(FormatIP(inst.PublicIP))
	}
	b.WriteString(" ")

	b.WriteString(FormatName(inst.Name, nameWidthRow))
	b.WriteString(" ")
	b.WriteString(Pad(inst.Type, typeWidth))
	b.WriteString(" ")

	b.WriteString(flagCluster(inst, networked))
	b.WriteString(" ")

	if networked {
		b.WriteString(FormatIP(inst.PublicIP))
	} else {
		b.WriteString(Pad(inst.Architecture, archWidth))
	}
	b.WriteString(" ")
	b.WriteString(inst.ID)

	return b.String()
}

// flagCluster is always exactly four slots: Windows, spot, monitoring, and
// internal. Internal marks a running VPC instance with no public address,
// i.e. one reachable only from inside the network.
func flagCluster(inst types.Instance, networked bool) string {
	flags := []byte{' ', ' ', ' ', ' '}

	if inst.Windows {
		flags[0] = 'W'
	}
	if inst.Spot {
		flags[1] = 'S'
	}
	if inst.Monitoring {
		flags[2] = 'M'
	}
	if networked && inst.State == types.StateRunning && !inst.PublicIP.IsValid() {
		flags[3] = 'I'
	}

	return string(flags)
}
