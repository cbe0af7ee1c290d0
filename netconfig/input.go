// MODUL: input
// ZWECK: Deterministische Pseudo-Zufalls-Eingabevektoren im Tensor-Literal-Format der Engine
// INPUT: Eingabedimension (dim > 0)
// OUTPUT: []float32 in [0,1) bzw. JSON-Tensor der Form 1x1xdim
// NEBENEFFEKTE: Keine (eigene Rand-Quelle, kein globaler Zustand)
// ABHAENGIGKEITEN: encoding/json, math/rand (stdlib)
// HINWEISE: Fester Seed 42 fuer reproduzierbare Benchmarks, nicht kryptographisch

package netconfig

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// inputSeed ist der feste Seed der Eingabe-Synthese.
// Gleicher Seed pro Aufruf macht wiederholte Laeufe vergleichbar.
const inputSeed = 42

// =============================================================================
// Eingabe-Synthese
// =============================================================================

// Input erzeugt dim gleichverteilte float32-Werte in [0,1).
// Jeder Aufruf setzt die Quelle neu auf, das Ergebnis ist deterministisch.
func Input(dim int) []float32 {
	rng := rand.New(rand.NewSource(inputSeed))
	values := make([]float32, dim)
	for i := range values {
		values[i] = rng.Float32()
	}
	return values
}

// InputTensorJSON serialisiert den Eingabevektor als Rang-3-Tensor
// (Batch=1, Height=1, Width=dim), so wie die Forward-Operation ihn erwartet.
func InputTensorJSON(dim int) (string, error) {
	tensor := [][][]float32{{Input(dim)}}
	b, err := json.Marshal(tensor)
	if err != nil {
		return "", fmt.Errorf("eingabe-tensor serialisieren: %w", err)
	}
	return string(b), nil
}
