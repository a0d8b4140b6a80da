package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/vqagen-cli/internal/apperr"
	"github.com/idlab-discover/vqagen-cli/internal/databom"
	dsio "github.com/idlab-discover/vqagen-cli/internal/io"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var (
	describeArtifact string
	describeOutput   string
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [artifact]",
	Short: "Emit a CycloneDX BOM describing a generated artifact",
	Long: "Describe a generated VQA dataset artifact as a CycloneDX data component, " +
		"with its hash and entry count, so it can be referenced from model BOMs.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	artifact := viper.GetString("describe.artifact")
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

	output := viper.GetString("describe.output")
	if output == "" {
		output = strings.TrimSuffix(artifact, ".json") + ".bom.json"
	}

	bom, err := databom.Build(artifact, ds, version)
	if err != nil {
		return err
	}
	if err := databom.WriteBOM(bom, output); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.GetCheckMark(),
		ui.Highlight.Render(output),
		ui.Dim.Render(fmt.Sprintf("→ %d entr(y/ies)", ds.Len())))
	return nil
}

func init() {
	describeCmd.Flags().StringVarP(&describeArtifact, "artifact", "f", "", "Artifact path (defaults to "+dsio.DefaultArtifactName+")")
	describeCmd.Flags().StringVarP(&describeOutput, "output", "o", "", "BOM output path (defaults to <artifact>.bom.json)")

	viper.BindPFlag("describe.artifact", describeCmd.Flags().Lookup("artifact"))
	viper.BindPFlag("describe.output", describeCmd.Flags().Lookup("output"))
}
