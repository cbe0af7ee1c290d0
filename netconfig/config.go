// MODUL: config
// ZWECK: Netzwerk-Deskriptoren (Layer-Shapes, Aktivierungen, Konnektivitaet) und VRAM-Schaetzung
// INPUT: Vier positive Integer (inputDim, hiddenWidth, hiddenLayers, outputDim)
// OUTPUT: Descriptors-Struktur plus serialisierte JSON-Teile fuer die Engine-ABI
// NEBENEFFEKTE: Keine (pure Funktionen)
// ABHAENGIGKEITEN: encoding/json (stdlib)
// HINWEISE: Nur Fully-Connected-Topologien, Height ist immer 1

package netconfig

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Datenstrukturen
// =============================================================================

// LayerSize beschreibt die Form eines Layers.
// Die JSON-Schluessel "Width"/"Height" sind Teil des Engine-Vertrags.
type LayerSize struct {
	Width  int `json:"Width"`
	Height int `json:"Height"`
}

// Descriptors buendelt die drei Deskriptor-Sequenzen einer Topologie.
// Invariante: alle drei Sequenzen haben dieselbe Laenge (hiddenLayers+2).
type Descriptors struct {
	Layers         []LayerSize
	Activations    []string
	FullyConnected []bool
}

// =============================================================================
// Topologie-Aufbau
// =============================================================================

// Build erzeugt die Deskriptoren fuer ein Feed-Forward-Netz:
// ein Input-Layer, hiddenLayers Hidden-Layer gleicher Breite, ein Output-Layer.
// Aktivierung ist durchgehend "relu", Konnektivitaet durchgehend fully connected.
func Build(inputDim, hiddenWidth, hiddenLayers, outputDim int) Descriptors {
	total := hiddenLayers + 2

	layers := make([]LayerSize, 0, total)
	layers = append(layers, LayerSize{Width: inputDim, Height: 1})
	for i := 0; i < hiddenLayers; i++ {
		layers = append(layers, LayerSize{Width: hiddenWidth, Height: 1})
	}
	layers = append(layers, LayerSize{Width: outputDim, Height: 1})

	acts := make([]string, total)
	fully := make([]bool, total)
	for i := range acts {
		acts[i] = "relu"
		fully[i] = true
	}

	return Descriptors{Layers: layers, Activations: acts, FullyConnected: fully}
}

// MarshalParts serialisiert die drei Deskriptoren als separate JSON-Dokumente,
// so wie die Engine-ABI sie als drei Argumente erwartet.
func (d Descriptors) MarshalParts() (layers, acts, fully string, err error) {
	lb, err := json.Marshal(d.Layers)
	if err != nil {
		return "", "", "", fmt.Errorf("layers serialisieren: %w", err)
	}
	ab, err := json.Marshal(d.Activations)
	if err != nil {
		return "", "", "", fmt.Errorf("activations serialisieren: %w", err)
	}
	fb, err := json.Marshal(d.FullyConnected)
	if err != nil {
		return "", "", "", fmt.Errorf("fullyConnected serialisieren: %w", err)
	}
	return string(lb), string(ab), string(fb), nil
}

// =============================================================================
// VRAM-Schaetzung
// =============================================================================

// EstimateVRAMMB schaetzt den Gewichtsspeicher eines Fully-Connected-Netzes
// in Megabyte (float32-Gewichte, inkl. Bias-Terme).
func EstimateVRAMMB(inputDim, hiddenWidth, hiddenLayers, outputDim int) float64 {
	params := float64(inputDim) * float64(hiddenWidth)
	if hiddenLayers > 1 {
		params += float64(hiddenLayers-1) * float64(hiddenWidth) * float64(hiddenWidth)
	}
	params += float64(hiddenWidth) * float64(outputDim)
	params += float64(hiddenLayers)*float64(hiddenWidth) + float64(outputDim) // Biases
	return params * 4.0 / (1024.0 * 1024.0)
}
