package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/vqagen-cli/internal/apperr"
	"github.com/idlab-discover/vqagen-cli/internal/dataset"
	"github.com/idlab-discover/vqagen-cli/internal/generator"
	dsio "github.com/idlab-discover/vqagen-cli/internal/io"
	"github.com/idlab-discover/vqagen-cli/internal/merger"
	"github.com/idlab-discover/vqagen-cli/internal/scanner"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var (
	genInput       string
	genOutput      string
	genPattern     string
	genLogLevel    string
	genForce       bool
	genInteractive bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the VQA dataset from object-detection metadata shards",
	Long: "Discover merged object-detection metadata shards, merge their records, " +
		"and write the supervised VQA dataset artifact. Without flags it searches " +
		"the current directory recursively and writes " + dsio.DefaultArtifactName + ".",
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Resolve effective log level (from config, env, or flag).
	level := strings.ToLower(strings.TrimSpace(viper.GetString("generate.log-level")))
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		// ok
	default:
		return apperr.Userf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}
	quiet := level == "quiet"

	// Wire internal package logging for debug mode
	if level == "debug" {
		wireDebugLogging(cmd.ErrOrStderr())
	}

	input := viper.GetString("generate.input")
	if input == "" {
		input = "."
	}
	output := viper.GetString("generate.output")
	if output == "" {
		output = dsio.DefaultArtifactName
	}
	pattern := viper.GetString("generate.pattern")

	// An existing artifact is only replaced deliberately.
	if !viper.GetBool("generate.force") && !quiet {
		if _, err := os.Stat(output); err == nil {
			if err := confirmOverwrite(output); err != nil {
				return err
			}
		}
	}

	genUI := ui.NewGenerateUI(cmd.OutOrStdout(), quiet)
	genUI.StartWorkflow()

	opts := generator.Options{
		Root:       input,
		Pattern:    pattern,
		Output:     output,
		OnProgress: progressHandler(genUI),
	}

	if viper.GetBool("generate.interactive") {
		opts.SelectShards = func(shards []scanner.Shard) ([]string, error) {
			options := make([]ui.ShardOption, 0, len(shards))
			for _, s := range shards {
				options = append(options, ui.ShardOption{Path: s.Path, Size: s.Size})
			}
			return ui.RunShardSelector(options)
		}
	}

	result, err := generator.Run(opts)
	if err != nil {
		genUI.Fail(err.Error())
		return err
	}

	genUI.FinishWorkflow()
	genUI.PrintWarnings(result.Warnings)
	genUI.PrintSummary(result.EntryCount, result.FileCount, result.OutputPath)

	// One-line summary, also in quiet mode.
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d entries from %d metadata files.\n",
		result.OutputPath, result.EntryCount, result.FileCount)
	return nil
}

// progressHandler maps pipeline events onto the workflow display.
func progressHandler(genUI *ui.GenerateUI) generator.ProgressCallback {
	return func(evt generator.ProgressEvent) {
		switch evt.Type {
		case generator.EventScanStart:
			genUI.StartDiscovery(evt.Path)
		case generator.EventScanComplete:
			genUI.CompleteDiscovery(evt.Count)
			genUI.StartMerging()
		case generator.EventMergeFile:
			genUI.UpdateMergingFile(evt.Index, evt.Total, evt.Path)
		case generator.EventMergeComplete:
			genUI.CompleteMerging(evt.Count, evt.Skipped)
		case generator.EventAssembleStart:
			genUI.StartAssembling()
		case generator.EventAssembleComplete:
			genUI.CompleteAssembling(evt.Count, evt.Skipped)
		case generator.EventWriteStart:
			genUI.StartWriting(evt.Path)
		case generator.EventWriteComplete:
			genUI.CompleteWriting(evt.Path)
		}
	}
}

// confirmOverwrite asks before replacing an existing artifact.
func confirmOverwrite(path string) error {
	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Overwrite existing artifact?").
				Description(fmt.Sprintf("%s already exists and will be replaced.", path)).
				Value(&confirm).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !confirm {
		return apperr.ErrCancelled
	}
	return nil
}

// wireDebugLogging points every package logger at w.
func wireDebugLogging(w io.Writer) {
	scanner.SetLogger(w)
	merger.SetLogger(w)
	dataset.SetLogger(w)
	generator.SetLogger(w)
}

func init() {
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "Directory searched recursively for metadata shards (defaults to current directory)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Artifact output path (defaults to "+dsio.DefaultArtifactName+")")
	generateCmd.Flags().StringVar(&genPattern, "pattern", "", "Shard glob pattern (defaults to "+scanner.DefaultPattern+")")
	generateCmd.Flags().StringVar(&genLogLevel, "log-level", "", "Log level: quiet|standard|debug")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "Overwrite an existing artifact without asking")
	generateCmd.Flags().BoolVar(&genInteractive, "interactive", false, "Interactively choose which discovered shards to include")

	// Bind all flags to viper for config file support
	viper.BindPFlag("generate.input", generateCmd.Flags().Lookup("input"))
	viper.BindPFlag("generate.output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("generate.pattern", generateCmd.Flags().Lookup("pattern"))
	viper.BindPFlag("generate.log-level", generateCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("generate.force", generateCmd.Flags().Lookup("force"))
	viper.BindPFlag("generate.interactive", generateCmd.Flags().Lookup("interactive"))
}
