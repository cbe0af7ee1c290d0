// MODUL: results
// ZWECK: Ergebnis-Datenstrukturen der Benchmark-Suite (Messungen, Paritaet, Report)
// INPUT: Keine
// OUTPUT: Measurement, ParityReport, CaseResult, SuiteReport
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: time, runtime (stdlib), google/uuid
// HINWEISE: JSON-Tags dienen dem optionalen Report-Export

package bench

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Messungen
// =============================================================================

// Measurement ist das Ergebnis einer gemessenen Phase: Anzahl sequenzieller
// Forward-Auswertungen, verstrichene Sekunden und abgeleiteter Durchsatz.
type Measurement struct {
	Backend    string  `json:"backend"`
	Runs       int     `json:"runs"`
	Elapsed    float64 `json:"elapsed_seconds"`
	Throughput float64 `json:"throughput_per_second"`
}

// newMeasurement berechnet den Durchsatz mit Schutz gegen degenerierte Zeiten.
func newMeasurement(backend string, runs int, elapsed float64) Measurement {
	m := Measurement{Backend: backend, Runs: runs, Elapsed: elapsed}
	if elapsed > 0 {
		m.Throughput = float64(runs) / elapsed
	}
	return m
}

// =============================================================================
// Paritaet
// =============================================================================

// ParityRow ist eine Zeile der Paritaets-Tabelle.
type ParityRow struct {
	Index int     `json:"index"`
	CPU   float32 `json:"cpu"`
	GPU   float32 `json:"gpu"`
	Diff  float64 `json:"diff"`
	Match bool    `json:"match"`
}

// ParityReport fasst den Vergleich der ersten Output-Positionen zusammen.
type ParityReport struct {
	Tolerance float64     `json:"tolerance"`
	Rows      []ParityRow `json:"rows"`
	Matches   int         `json:"matches"`
}

// =============================================================================
// Fall-Ergebnis
// =============================================================================

// CaseResult ist das Ergebnis eines Benchmark-Falls. Terminalzustaende:
// Aborted=true (Create/Perturb fehlgeschlagen) oder vollstaendig/CPU-only.
type CaseResult struct {
	Case            Case          `json:"case"`
	EstimatedVRAMMB float64       `json:"estimated_vram_mb"`
	CreateInfo      string        `json:"create_info,omitempty"`
	Aborted         bool          `json:"aborted"`
	AbortReason     string        `json:"abort_reason,omitempty"`
	CPU             *Measurement  `json:"cpu,omitempty"`
	GPU             *Measurement  `json:"gpu,omitempty"`
	GPUSkipReason   string        `json:"gpu_skip_reason,omitempty"`
	Speedup         float64       `json:"speedup,omitempty"`
	Parity          *ParityReport `json:"parity,omitempty"`
}

// =============================================================================
// Suite-Report
// =============================================================================

// SystemInfo beschreibt den Host des Laufs.
type SystemInfo struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	CPUCores int    `json:"cpu_cores"`
}

// SuiteReport buendelt alle Fall-Ergebnisse eines Laufs fuer den Export.
type SuiteReport struct {
	RunID      string       `json:"run_id"`
	Timestamp  time.Time    `json:"timestamp"`
	SystemInfo SystemInfo   `json:"system_info"`
	Results    []CaseResult `json:"results"`
}

// NewSuiteReport erstellt einen Report mit frischer Run-ID und Host-Infos.
func NewSuiteReport(results []CaseResult) *SuiteReport {
	return &SuiteReport{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		SystemInfo: SystemInfo{
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			CPUCores: runtime.NumCPU(),
		},
		Results: results,
	}
}
