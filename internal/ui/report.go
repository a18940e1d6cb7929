package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vietdv277/stratus/pkg/types"
)

// ClassicDivider heads the section of instances running outside any VPC.
const ClassicDivider = "---------------------------------- EC2 Classic ----------------------------------"

// RenderReport renders the grouped topology report. VPCs and subnets are
// ordered by their CIDR string, subnets with no instances are suppressed,
// and each subnet section lists its instances ordered by private IP.
func RenderReport(vpcs map[string]*types.VPC, classic []types.Instance, colored bool) string {
	var b strings.Builder
	total := 0

	for _, v := range sortVPCs(vpcs) {
		for _, s := range occupiedSubnets(v) {
			b.WriteString(sectionHeader(v, s, colored))
			b.WriteString("\n")

			for _, inst := range sortByPrivateIP(s.Instances) {
				b.WriteString(RenderRow(inst, true, colored))
				b.WriteString("\n")
				total++
			}
		}
	}

	if len(classic) > 0 {
		divider := ClassicDivider
		if colored {
			divider = MutedStyle.Render(divider)
		}
		b.WriteString(divider)
		b.WriteString("\n")

		for _, inst := range sortByName(classic) {
			b.WriteString(RenderRow(inst, false, colored))
			b.WriteString("\n")
			total++
		}
	}

	if total > 0 {
		fmt.Fprintf(&b, "  %d instances\n", total)
	}

	return b.String()
}

func sectionHeader(v *types.VPC, s *types.Subnet, colored bool) string {
	line := fmt.Sprintf("----- VPC: %s  Subnet: %s   %s - %s -----",
		FormatName(v.Name, nameWidth), FormatName(s.Name, nameWidth), s.CIDR, s.AZ)
	if colored {
		return HeaderStyle.Render(line)
	}
	return line
}

// sortVPCs orders VPCs by the textual CIDR, not numerically. "10." before
// "172." happens to read naturally, and the ordering is stable across runs.
func sortVPCs(vpcs map[string]*types.VPC) []*types.VPC {
	ordered := make([]*types.VPC, 0, len(vpcs))
	for _, v := range vpcs {
		ordered = append(ordered, v)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CIDR < ordered[j].CIDR
	})
	return ordered
}

// occupiedSubnets returns the VPC's non-empty subnets ordered by CIDR.
func occupiedSubnets(v *types.VPC) []*types.Subnet {
	subnets := make([]*types.Subnet, 0, len(v.Subnets))
	for _, s := range v.Subnets {
		if len(s.Instances) > 0 {
			subnets = append(subnets, s)
		}
	}
	sort.Slice(subnets, func(i, j int) bool {
		return subnets[i].CIDR < subnets[j].CIDR
	})
	return subnets
}

// sortByPrivateIP orders instances by address. The zero Addr (no private
// IP) sorts before every real address.
func sortByPrivateIP(instances []types.Instance) []types.Instance {
	ordered := make([]types.Instance, len(instances))
	copy(ordered, instances)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PrivateIP.Compare(ordered[j].PrivateIP) < 0
	})
	return ordered
}

// sortByName orders instances by name, nameless ones first.
func sortByName(instances []types.Instance) []types.Instance {
	ordered := make([]types.Instance, len(instances))
	copy(ordered, instances)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Name < ordered[j].Name
	})
	return ordered
}
