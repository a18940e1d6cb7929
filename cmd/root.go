package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/stratus/internal/config"
)

var (
	// Global flags
	profile string
	region  string
	noColor bool

	// Decided once per process in initConfig and passed down explicitly;
	// the renderers never probe the terminal themselves.
	colorCapable bool
)

var rootCmd = &cobra.Command{
	Use:   "stratus",
	Short: "Stratus - EC2 inventory viewer grouped by VPC topology",
	Long: `Stratus is a read-only viewer for EC2 instances. It fetches instances,
VPCs, and subnets in one pass and renders a compact report grouped by
network topology, plus a full detail view for a single instance.

Examples:
  stratus ls                   # topology report of all instances
  stratus ls --name web        # filter instances by name
  stratus ls -i                # interactive instance picker
  stratus show i-0abc123def    # full detail for one instance
  stratus whoami               # AWS caller identity
  stratus profile prod         # save a default profile`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("STRATUS")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > ~/.stratus/config.yaml > AWS_PROFILE env
	if profile == "" {
		if saved := config.GetSavedProfile(); saved != "" {
			profile = saved
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Same priority chain for the region
	if region == "" {
		if saved := config.GetSavedRegion(); saved != "" {
			region = saved
		} else {
			region = os.Getenv("AWS_REGION")
			if region == "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			}
		}
	}

	colorCapable = !noColor &&
		os.Getenv("NO_COLOR") == "" &&
		isatty.IsTerminal(os.Stdout.Fd())
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}

// ColorCapable reports whether stdout supports the colored glyph set.
func ColorCapable() bool {
	return colorCapable
}
