package validator

import (
	"io"

	"github.com/idlab-discover/vqagen-cli/internal/logging"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Validate:", PrefixColor: ui.FgGreen}

// SetLogger sets an optional destination for validator logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(path string, format string, args ...any) {
	logger.Logf(path, format, args...)
}
