package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/vqagen-cli/internal/apperr"
	dsio "github.com/idlab-discover/vqagen-cli/internal/io"
	"github.com/idlab-discover/vqagen-cli/internal/validator"
)

var (
	validateArtifact string
	validateReport   string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [artifact]",
	Short: "Check the structure of a generated VQA dataset artifact",
	Long: "Validate that every entry of an artifact carries exactly three QA pairs " +
		"with five answers each, a video path consistent with its key, and no empty text.",
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	artifact := viper.GetString("validate.artifact")
	if len(args) == 1 {
		artifact = args[0]
	}
	if artifact == "" {
		artifact = dsio.DefaultArtifactName
	}

	ds, err := dsio.ReadDataset(artifact)
	if err != nil {
		if os.IsNotExist(err) {
			return apperr.Userf("artifact %s does not exist; run 'vqagen-cli generate' first", artifact)
		}
		return err
	}

	result := validator.ValidateDataset(artifact, ds)

	if reportPath := viper.GetString("validate.report"); reportPath != "" {
		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		if err := validator.WriteYAML(f, result); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	validator.PrintReport(cmd.OutOrStdout(), result)

	if !result.Valid {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}
	return nil
}

func init() {
	validateCmd.Flags().StringVarP(&validateArtifact, "artifact", "f", "", "Artifact path (defaults to "+dsio.DefaultArtifactName+")")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Also write the validation report to this path as YAML")

	viper.BindPFlag("validate.artifact", validateCmd.Flags().Lookup("artifact"))
	viper.BindPFlag("validate.report", validateCmd.Flags().Lookup("report"))
}
