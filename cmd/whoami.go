package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show AWS caller identity",
	Long: `Show the AWS account, ARN, and user ID of the current credentials.

Examples:
  stratus whoami
  stratus whoami -p prod`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := aws.NewClient(
		context.Background(),
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	identity, err := client.GetCallerIdentity()
	if err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render("AWS Identity"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))
	fmt.Printf("  Account: %s\n", identity.Account)
	fmt.Printf("  ARN:     %s\n", identity.Arn)
	fmt.Printf("  UserID:  %s\n", identity.UserID)

	return nil
}
