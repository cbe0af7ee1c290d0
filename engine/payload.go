// MODUL: payload
// ZWECK: Klassifikation und Feld-Extraktion der JSON-Antworten der Engine
// INPUT: Lokale Kopien der Antwort-Puffer ([]byte)
// OUTPUT: Payload-Struktur, Handle-IDs, Output-Werte
// NEBENEFFEKTE: slog-Warnung bei verkuerzten Output-Arrays
// ABHAENGIGKEITEN: encoding/json, log/slog (stdlib)
// HINWEISE: Zwei Formen pro Antwort: Erfolg (Domaenen-Felder) oder Fehler ("error"-Feld)

package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// =============================================================================
// Fehler-Typ
// =============================================================================

// EngineError ist die Fehler-Form einer Engine-Antwort.
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return "engine: " + e.Message
}

// =============================================================================
// Payload-Struktur
// =============================================================================

// Payload ist die geparste Erfolgs-Form einer Objekt-Antwort.
// Raw haelt die lokale Kopie fuer Report und Debug-Ausgabe.
type Payload struct {
	Raw    []byte      `json:"-"`
	Handle *int64      `json:"handle"`
	Status string      `json:"status"`
	Output [][]float64 `json:"output"`
}

// String liefert den Antwort-Text fuer Report-Zeilen.
func (p Payload) String() string {
	return string(p.Raw)
}

// =============================================================================
// Klassifikation
// =============================================================================

// errorShape dient nur der Fehler-Erkennung beim Klassifizieren.
type errorShape struct {
	Error *string `json:"error"`
}

// Classify parst eine lokale Antwort-Kopie und trennt Fehler- von Erfolgs-Form.
// Objekt-Antworten mit "error"-Feld werden zu *EngineError, alles andere
// (Objekte mit Domaenen-Feldern, Arrays von Rueckgabewerten) zu Payload.
// Domaenen-Felder duerfen nur aus der Erfolgs-Form gelesen werden.
func Classify(data []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Payload{}, fmt.Errorf("leere engine-antwort")
	}

	if trimmed[0] == '{' {
		var es errorShape
		if err := json.Unmarshal(trimmed, &es); err != nil {
			return Payload{}, fmt.Errorf("engine-antwort parsen: %w", err)
		}
		if es.Error != nil {
			return Payload{}, &EngineError{Message: *es.Error}
		}

		p := Payload{Raw: data}
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return Payload{}, fmt.Errorf("engine-antwort parsen: %w", err)
		}
		return p, nil
	}

	// Array-Form: Rueckgabewerte eines Methoden-Aufrufs, keine Objekt-Felder
	if !json.Valid(trimmed) {
		return Payload{}, fmt.Errorf("engine-antwort ist kein gueltiges JSON: %q", trimmed)
	}
	return Payload{Raw: data}, nil
}

// =============================================================================
// Feld-Extraktion
// =============================================================================

// HandleID liest das "handle"-Feld einer Erfolgs-Antwort.
func (p Payload) HandleID() (Handle, error) {
	if p.Handle == nil {
		return 0, fmt.Errorf("engine-antwort ohne handle-feld: %s", p.Raw)
	}
	return Handle(*p.Handle), nil
}

// OutputValues liest die ersten n Output-Werte einer Antwort. Akzeptiert
// werden die Objekt-Form {"output":[[...]]} und die Array-Form [[...]]
// (Rueckgabewerte von ExtractOutput). Fehlende Werte werden mit 0.0
// aufgefuellt und per Warnung gemeldet; dieses nachsichtige Verhalten ist
// Teil des Vertrags und bewusst kein harter Fehler.
func (p Payload) OutputValues(n int) []float32 {
	row := p.outputRow()

	out := make([]float32, n)
	for i := 0; i < n && i < len(row); i++ {
		out[i] = float32(row[i])
	}
	if len(row) < n {
		slog.Warn("output-array kuerzer als angefordert, fuelle mit 0.0 auf",
			"angefordert", n, "bekommen", len(row))
	}
	return out
}

// outputRow findet die erste Zahlenreihe der Antwort.
func (p Payload) outputRow() []float64 {
	if len(p.Output) > 0 {
		return p.Output[0]
	}

	trimmed := bytes.TrimSpace(p.Raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}

	// Array-Form: erster Rueckgabewert ist das Output-Array,
	// entweder flach ([n]float) oder geschachtelt ([[n]float)
	var rets []json.RawMessage
	if err := json.Unmarshal(trimmed, &rets); err != nil || len(rets) == 0 {
		return nil
	}

	var nested [][]float64
	if err := json.Unmarshal(rets[0], &nested); err == nil && len(nested) > 0 {
		return nested[0]
	}
	var flat []float64
	if err := json.Unmarshal(rets[0], &flat); err == nil {
		return flat
	}
	return nil
}
