package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/ui"
	"github.com/vietdv277/stratus/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <instance-id>",
	Short: "Show full details for one instance",
	Long: `Show the full detail block for a single instance: state, topology,
addresses, hardware, image, and security groups.

Examples:
  stratus show i-0abc123def456`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	client, err := aws.NewClient(
		context.Background(),
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	inst, err := client.GetInstance(args[0])
	if err != nil {
		return err
	}

	return printDetail(client, inst)
}

// printDetail resolves the instance's VPC, subnet, and image description
// and prints the detail block. The image lookup is best-effort: a failure
// there must not abort the rest of the view.
func printDetail(client *aws.Client, inst *types.Instance) error {
	var vpc *types.VPC
	var subnet *types.Subnet

	if inst.Networked() {
		var err error
		vpc, err = client.GetVPC(inst.VPCID)
		if err != nil {
			return err
		}
		subnet, err = client.GetSubnet(inst.SubnetID)
		if err != nil {
			return err
		}
	}

	imageDesc, imageErr := client.DescribeImage(inst.ImageID)

	fmt.Print(ui.RenderDetail(*inst, vpc, subnet, imageDesc, imageErr == nil, ColorCapable()))
	return nil
}
