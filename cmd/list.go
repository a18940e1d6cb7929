package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/inventory"
	"github.com/vietdv277/stratus/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List instances grouped by VPC and subnet",
	Long: `List EC2 instances grouped by their VPC and subnet, ordered by CIDR.
Instances outside any VPC appear in a trailing EC2 Classic section.

Examples:
  stratus ls                   # all instances, grouped by topology
  stratus ls --name web        # case-insensitive name filter
  stratus ls -s running        # only running instances
  stratus ls -i                # interactive picker, enter shows details`,
	RunE: runList,
}

var (
	listName        string
	listState       string
	listInteractive bool
)

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringVar(&listName, "name", "", "Filter instances by name pattern")
	lsCmd.Flags().StringVarP(&listState, "state", "s", "", "Filter by state (running, stopped, ...)")
	lsCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "Interactive selection mode")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := aws.NewClient(
		context.Background(),
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	// Topology first, instances second: grouping treats a dangling
	// VPC/subnet reference as a torn snapshot.
	vpcs, err := client.ListVPCs()
	if err != nil {
		return err
	}

	subnets, err := client.ListSubnets()
	if err != nil {
		return err
	}

	input := &aws.ListInstancesInput{}
	if listState != "" && listState != "all" {
		input.States = []string{listState}
	}

	instances, err := client.ListInstances(input)
	if err != nil {
		return err
	}

	if len(instances) == 0 {
		fmt.Println("No instances found")
		return nil
	}

	if listInteractive {
		inst, err := ui.SelectInstance(instances, ColorCapable())
		if err != nil {
			if errors.Is(err, ui.ErrSelectionCancelled) {
				return nil // cancelled — silent exit
			}
			return err
		}
		return printDetail(client, inst)
	}

	topology, err := inventory.BuildTopology(vpcs, subnets)
	if err != nil {
		return err
	}

	classic, err := inventory.Group(instances, topology, listName)
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderReport(topology, classic, ColorCapable()))
	return nil
}
