package shared

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger builds a charmbracelet logger for the given level and
// format ("text" or "json").
func SetupLogger(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	}
	switch format {
	case "", "text":
	case "json":
		opts.Formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return log.NewWithOptions(w, opts), nil
}
