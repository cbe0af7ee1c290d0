// MODUL: library
// ZWECK: Plattform-unabhaengige Namensgebung der Engine-Bibliothek
// INPUT: GOOS/GOARCH des Builds
// OUTPUT: Dateiname der Paragon-Shared-Library
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: runtime (stdlib)
// HINWEISE: Die Bibliothek wird separat mit `go build -buildmode=c-shared` erzeugt

package engine

import (
	"fmt"
	"runtime"
)

// DefaultLibraryName liefert den konventionellen Dateinamen der
// Engine-Bibliothek fuer die aktuelle Plattform, z.B. teleport_amd64_linux.so.
func DefaultLibraryName() string {
	ext := ".so"
	switch runtime.GOOS {
	case "darwin":
		ext = ".dylib"
	case "windows":
		ext = ".dll"
	}
	return fmt.Sprintf("teleport_%s_%s%s", runtime.GOARCH, runtime.GOOS, ext)
}
