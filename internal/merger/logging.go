package merger

import (
	"io"

	"github.com/idlab-discover/vqagen-cli/internal/logging"
	"github.com/idlab-discover/vqagen-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Merge:", PrefixColor: ui.FgYellow}

// SetLogger sets an optional destination for merger logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(path string, format string, args ...any) {
	logger.Logf(path, format, args...)
}
