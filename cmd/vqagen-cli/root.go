package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idlab-discover/vqagen-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vqagen-cli",
	Short: "VQA dataset generator for surgical training videos",
	Long:  longDescription,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var cfgFile string
var version string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vqagen-cli.yaml or ./config/defaults.yaml)")

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	// Add subcommands
	rootCmd.AddCommand(generateCmd, scanCmd, validateCmd, describeCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)

		err := viper.ReadInConfig()
		notFound := &viper.ConfigFileNotFoundError{}
		if err != nil && !errors.As(err, notFound) {
			cobra.CheckErr(err)
		}
		if err == nil {
			configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
			fmt.Fprintln(os.Stderr, configMsg)
		}
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		viper.AddConfigPath("./config")

		// Try .vqagen-cli first
		viper.SetConfigName(".vqagen-cli")
		err = viper.ReadInConfig()

		// If not found, try defaults.yaml
		notFound := &viper.ConfigFileNotFoundError{}
		if err != nil && errors.As(err, notFound) {
			viper.SetConfigName("defaults")
			err = viper.ReadInConfig()
		}

		if err != nil && !errors.As(err, notFound) {
			cobra.CheckErr(err)
		}

		if err == nil {
			configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
			fmt.Fprintln(os.Stderr, configMsg)
		}
	}

	// Enable environment variable support (e.g., VQAGEN_GENERATE_OUTPUT).
	// Replace dots/dashes with underscores: generate.log-level -> VQAGEN_GENERATE_LOG_LEVEL
	viper.SetEnvPrefix("VQAGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

const longDescription = "VQA dataset generator for surgical training videos. Converts per-segment object-detection metadata shards into a supervised visual-question-answering dataset."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}
