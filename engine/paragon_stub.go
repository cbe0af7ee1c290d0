// MODUL: paragon_stub
// ZWECK: Stub fuer Builds ohne cgo bzw. auf Windows
// INPUT: Pfad zur Shared-Library (ignoriert)
// OUTPUT: Fehler beim Laden
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: Keine
// HINWEISE: Das dlopen-Binding in paragon_cgo.go braucht cgo und libdl

//go:build !cgo || windows

package engine

import "fmt"

// Load steht ohne cgo nicht zur Verfuegung.
func Load(path string) (ABI, error) {
	return nil, fmt.Errorf("engine-bibliothek %s: dieses build wurde ohne cgo erstellt", path)
}
