package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile [name]",
	Short: "Show or set the default AWS profile",
	Long: `With no argument, list the profiles found in ~/.aws/credentials and
~/.aws/config, marking the saved default. With an argument, validate the
profile and save it as the default in ~/.stratus/config.yaml.

Examples:
  stratus profile              # list available profiles
  stratus profile prod         # save prod as the default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		name := args[0]
		if !aws.ValidateProfile(name) {
			return fmt.Errorf("profile %q not found in ~/.aws/credentials or ~/.aws/config", name)
		}
		if err := config.SetProfile(name); err != nil {
			return err
		}
		fmt.Printf("Default profile set to %s\n", name)
		return nil
	}

	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No AWS profiles found")
		return nil
	}

	saved := config.GetSavedProfile()

	fmt.Println(ui.HeaderStyle.Render("AWS Profiles"))
	fmt.Println(ui.MutedStyle.Render("───────────────────────────────"))
	for _, p := range profiles {
		marker := "  "
		if p.Name == saved {
			marker = "* "
		}
		line := fmt.Sprintf("%s%-24s %s", marker, p.Name, p.Region)
		if p.Name == saved {
			fmt.Println(ui.NameStyle.Render(line))
		} else {
			fmt.Println(line)
		}
	}

	return nil
}
