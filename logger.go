package match

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger overrides the package-level logger, e.g. to route fatal
// pool/fill diagnostics into an application's own handler.
func SetLogger(l *slog.Logger) {
	logger = l
}
