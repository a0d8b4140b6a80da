package dataset

import (
	"io"

	"github.com/idlab-discover/vqagen-cli/internal/logging"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Dataset:", PrefixColor: ui.FgCyan, OmitFile: true}

// SetLogger sets an optional destination for dataset logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
