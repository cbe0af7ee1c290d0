// MODUL: abi
// ZWECK: Modellierung der Fremd-Schnittstelle (Paragon C-ABI) als Go-Interface
// INPUT: Keine
// OUTPUT: ABI- und RawBuffer-Interfaces, Handle-Typ
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: Keine (nur Typdefinitionen)
// HINWEISE: RawBuffer gehoert dem Fremd-Allocator, Free genau einmal aufrufen

package engine

// Handle ist der opake Integer-Bezeichner eines Engine-Netzwerks.
// Die Engine besitzt den Zustand, der Harness referenziert nur.
type Handle int64

// RawBuffer ist ein von der Engine zurueckgegebener Antwort-Puffer.
// Bytes liefert den Inhalt, Free gibt den Puffer an den Fremd-Allocator
// zurueck. Nach Free darf der Puffer nicht mehr gelesen werden.
type RawBuffer interface {
	Bytes() []byte
	Free()
}

// ABI buendelt die sechs Eintrittspunkte der Engine. Jede Antwort ist ein
// strukturierter Text-Puffer (JSON), Erfolg oder Fehler erst nach
// Klassifikation unterscheidbar.
type ABI interface {
	// NewNetworkFloat32 erzeugt ein Netzwerk aus drei JSON-Deskriptoren.
	NewNetworkFloat32(layersJSON, activationsJSON, fullyJSON string, useGPU, debug bool) RawBuffer

	// PerturbWeights stoert alle Gewichte deterministisch (magnitude, seed).
	PerturbWeights(handle Handle, magnitude float64, seed int64) RawBuffer

	// EnableGPU / DisableGPU schalten das Compute-Backend des Netzwerks um.
	EnableGPU(handle Handle) RawBuffer
	DisableGPU(handle Handle) RawBuffer

	// Call ruft eine benannte Operation (z.B. "Forward", "ExtractOutput")
	// mit einem JSON-Argument-Array auf.
	Call(handle Handle, method, argsJSON string) RawBuffer

	// FreeNetwork gibt den Engine-Zustand zum Handle frei. Kein Rueckgabewert,
	// Idempotenz ist nicht garantiert: hoechstens einmal pro Handle aufrufen.
	FreeNetwork(handle Handle)
}
