package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/vqagen-cli/internal/apperr"
	"github.com/idlab-discover/vqagen-cli/internal/merger"
	"github.com/idlab-discover/vqagen-cli/internal/scanner"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var (
	scanInput   string
	scanPattern string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover and inspect metadata shards without writing anything",
	Long: "Dry run of the discovery and merge stages: list every metadata shard " +
		"matching the pattern with its record count and any parse problems.",
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	input := viper.GetString("scan.input")
	if input == "" {
		input = "."
	}
	pattern := viper.GetString("scan.pattern")
	if pattern == "" {
		pattern = scanner.DefaultPattern
	}

	shards, err := scanner.Scan(input, pattern)
	if err != nil {
		return err
	}
	if len(shards) == 0 {
		return apperr.Userf("no metadata shards matching %q found under %s", pattern, input)
	}

	out := cmd.OutOrStdout()
	totalRecords := 0
	skippedFiles := 0

	for _, s := range shards {
		// Parse each shard on its own so counts stay per-file.
		res := merger.Merge([]string{s.Path}, nil)
		if res.FilesSkipped > 0 {
			skippedFiles++
			reason := strings.TrimPrefix(res.Warnings[0], fmt.Sprintf("failed to read %s: ", s.Path))
			fmt.Fprintf(out, "  %s %s %s\n", ui.GetCrossMark(), ui.Highlight.Render(s.Path), ui.Error.Render("→ "+reason))
			continue
		}
		totalRecords += len(res.Records)
		fmt.Fprintf(out, "  %s %s %s\n", ui.GetCheckMark(), ui.Highlight.Render(s.Path),
			ui.Dim.Render(fmt.Sprintf("→ %d record(s)", len(res.Records))))
	}

	fmt.Fprintln(out)
	summary := fmt.Sprintf("%d shard(s), %d record(s)", len(shards), totalRecords)
	if skippedFiles > 0 {
		summary += fmt.Sprintf(", %d unreadable", skippedFiles)
	}
	fmt.Fprintln(out, ui.FormatStatus("info", summary))
	return nil
}

func init() {
	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "", "Directory searched recursively for metadata shards (defaults to current directory)")
	scanCmd.Flags().StringVar(&scanPattern, "pattern", "", "Shard glob pattern (defaults to "+scanner.DefaultPattern+")")

	viper.BindPFlag("scan.input", scanCmd.Flags().Lookup("input"))
	viper.BindPFlag("scan.pattern", scanCmd.Flags().Lookup("pattern"))
}
