package validator

import (
	"fmt"
	"io"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

// PrintReport writes a human-readable validation report to w.
func PrintReport(w io.Writer, r Result) {
	if r.Valid {
		fmt.Fprintf(w, "%s %s\n", ui.GetCheckMark(), ui.Success.Render("validation passed"))
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.GetCrossMark(), ui.Error.Render("validation failed"))
	}

	fmt.Fprintln(w, ui.FormatKeyValue("Artifact", r.ArtifactPath))
	fmt.Fprintln(w, ui.FormatKeyValue("Entries", fmt.Sprintf("%d", r.EntryCount)))

	if len(r.Errors) > 0 {
		var b strings.Builder
		b.WriteString(ui.Error.Render(fmt.Sprintf("errors (%d):", len(r.Errors))))
		for _, e := range r.Errors {
			b.WriteString(fmt.Sprintf("\n%s %s", ui.GetBullet(), e))
		}
		fmt.Fprintln(w, ui.ErrorBox.Render(b.String()))
	}

	if len(r.Warnings) > 0 {
		var b strings.Builder
		b.WriteString(ui.Warning.Render(fmt.Sprintf("warnings (%d):", len(r.Warnings))))
		for _, warn := range r.Warnings {
			b.WriteString(fmt.Sprintf("\n%s %s", ui.GetBullet(), warn))
		}
		fmt.Fprintln(w, ui.Box.Render(b.String()))
	}
}

// yamlReport is the machine-readable report schema.
type yamlReport struct {
	Artifact string   `yaml:"artifact"`
	Valid    bool     `yaml:"valid"`
	Entries  int      `yaml:"entries"`
	Errors   []string `yaml:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
}

// WriteYAML writes the validation result to w as YAML.
func WriteYAML(w io.Writer, r Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(yamlReport{
		Artifact: r.ArtifactPath,
		Valid:    r.Valid,
		Entries:  r.EntryCount,
		Errors:   r.Errors,
		Warnings: r.Warnings,
	})
}
