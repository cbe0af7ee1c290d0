// MODUL: logutil
// ZWECK: Konstruktion des slog-Handlers fuer die CLI
// INPUT: Writer und Log-Level
// OUTPUT: Konfigurierter *slog.Logger
// NEBENEFFEKTE: Keine (SetDefault passiert beim Aufrufer)
// ABHAENGIGKEITEN: log/slog, path/filepath (stdlib)
// HINWEISE: Quell-Pfade werden auf den Dateinamen gekuerzt

package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// NewLogger erstellt einen Text-Logger mit Quell-Angabe.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
