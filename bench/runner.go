// MODUL: runner
// ZWECK: Orchestrierung eines Benchmark-Falls: Build → Create → Perturb → CPU → GPU → Paritaet → Freigabe
// INPUT: Case-Deskriptoren, engine.Client, Konfiguration
// OUTPUT: CaseResult pro Fall
// NEBENEFFEKTE: Engine-Aufrufe (CPU/GPU-Last), slog-Ausgaben
// ABHAENGIGKEITEN: engine, netconfig, clock.go, results.go, parity.go
// HINWEISE: Handle-Freigabe laeuft per defer auf jedem Pfad genau einmal

package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/openfluke/teleport/engine"
	"github.com/openfluke/teleport/netconfig"
)

// =============================================================================
// Konfiguration
// =============================================================================

// Config definiert die Mess-Parameter eines Laufs.
type Config struct {
	WarmupRuns  int     `json:"warmup_runs"`
	Tolerance   float64 `json:"tolerance"`
	ParityCount int     `json:"parity_count"`
	Magnitude   float64 `json:"perturb_magnitude"`
	Seed        int64   `json:"perturb_seed"`

	// Clock ist injizierbar fuer Tests; nil bedeutet die monotone Standard-Uhr.
	Clock Clock `json:"-"`
}

// DefaultConfig liefert die Standard-Parameter der Suite.
func DefaultConfig() Config {
	return Config{
		WarmupRuns:  10,
		Tolerance:   1e-4,
		ParityCount: 10,
		Magnitude:   0.1,
		Seed:        42,
	}
}

// =============================================================================
// Runner
// =============================================================================

// Runner fuehrt Benchmark-Faelle strikt sequenziell aus. Parallele Faelle
// wuerden sich CPU/GPU-Ressourcen der Engine teilen und die Messung verfaelschen.
type Runner struct {
	client *engine.Client
	cfg    Config
	clock  Clock
}

// NewRunner erstellt einen Runner ueber einem Engine-Client.
func NewRunner(client *engine.Client, cfg Config) *Runner {
	clock := cfg.Clock
	if clock == nil {
		clock = Now
	}
	return &Runner{client: client, cfg: cfg, clock: clock}
}

// RunSuite fuehrt alle Faelle in Tabellen-Reihenfolge aus. onResult wird nach
// jedem Fall aufgerufen (Report-Ausgabe), ein fehlgeschlagener Fall bricht
// die Suite nicht ab.
func (r *Runner) RunSuite(cases []Case, onResult func(CaseResult)) []CaseResult {
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		res := r.RunCase(c)
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return results
}

// =============================================================================
// Fall-Zustandsmaschine
// =============================================================================

// RunCase fuehrt einen Fall bis zum Terminalzustand aus. Jeder Pfad, der ein
// Handle erzeugt hat, gibt es genau einmal frei (defer direkt nach Create).
func (r *Runner) RunCase(bc Case) (res CaseResult) {
	res = CaseResult{
		Case:            bc,
		EstimatedVRAMMB: netconfig.EstimateVRAMMB(bc.InputDim, bc.HiddenWidth, bc.HiddenLayers, bc.OutputDim),
	}

	// Build: Deskriptoren und Eingabe-Tensor
	desc := netconfig.Build(bc.InputDim, bc.HiddenWidth, bc.HiddenLayers, bc.OutputDim)
	layers, acts, fully, err := desc.MarshalParts()
	if err != nil {
		return r.abort(res, "Build", err)
	}
	inputJSON, err := netconfig.InputTensorJSON(bc.InputDim)
	if err != nil {
		return r.abort(res, "Build", err)
	}

	// Create: bei Fehler existiert kein Handle, nichts freizugeben
	handle, created, err := r.client.CreateNetwork(layers, acts, fully, true, false)
	if err != nil {
		return r.abort(res, "NewNetwork", err)
	}
	res.CreateInfo = created.String()
	defer r.client.Release(handle)

	// Perturb: deterministische Gewichts-Stoerung
	if _, err := r.client.PerturbWeights(handle, r.cfg.Magnitude, r.cfg.Seed); err != nil {
		return r.abort(res, "PerturbWeights", err)
	}

	// CPU-Phase
	if _, err := r.client.DisableGPU(handle); err != nil {
		slog.Warn("DisableGPU fehlgeschlagen, messe im aktuellen Modus weiter",
			"case", bc.Name, "fehler", err)
	}
	cpu, cpuOut, err := r.measurePhase(handle, "cpu", inputJSON, bc.Runs)
	if err != nil {
		return r.abort(res, "CPU-Messung", err)
	}
	res.CPU = &cpu

	// GPU-Phase: Enable-Fehler ist ein weicher Skip (Host ohne GPU-Backend),
	// kein Abbruch; bewusst asymmetrisch zur Create/Perturb-Politik.
	if _, err := r.client.EnableGPU(handle); err != nil {
		res.GPUSkipReason = errMessage(err)
		slog.Warn("GPU-Backend nicht verfuegbar, ueberspringe GPU-Phase",
			"case", bc.Name, "grund", res.GPUSkipReason)
		return res
	}
	gpu, gpuOut, err := r.measurePhase(handle, "gpu", inputJSON, bc.Runs)
	if err != nil {
		res.GPUSkipReason = errMessage(err)
		slog.Warn("GPU-Messung fehlgeschlagen, berichte nur CPU-Ergebnisse",
			"case", bc.Name, "grund", res.GPUSkipReason)
		return res
	}
	res.GPU = &gpu
	if gpu.Elapsed > 0 {
		res.Speedup = cpu.Elapsed / gpu.Elapsed
	}

	// Paritaet: nur wenn beide Outputs vorliegen
	parity := CheckParity(cpuOut, gpuOut, r.cfg.Tolerance)
	res.Parity = &parity
	return res
}

// measurePhase fuehrt Warmup und Messung einer Phase aus und liest die
// Referenz-Outputs. Warmup-Ergebnisse werden verworfen.
func (r *Runner) measurePhase(h engine.Handle, backend, inputJSON string, runs int) (Measurement, []float32, error) {
	for i := 0; i < r.cfg.WarmupRuns; i++ {
		if err := r.client.Forward(h, inputJSON); err != nil {
			return Measurement{}, nil, fmt.Errorf("warmup: %w", err)
		}
	}

	start := r.clock()
	for i := 0; i < runs; i++ {
		if err := r.client.Forward(h, inputJSON); err != nil {
			return Measurement{}, nil, fmt.Errorf("forward-lauf %d: %w", i, err)
		}
	}
	elapsed := r.clock() - start

	out, err := r.client.ExtractOutput(h, r.cfg.ParityCount)
	if err != nil {
		return Measurement{}, nil, fmt.Errorf("output lesen: %w", err)
	}
	return newMeasurement(backend, runs, elapsed), out, nil
}

// abort markiert den Fall als abgebrochen; die Handle-Freigabe uebernimmt
// das defer im Aufrufer, falls ein Handle existiert.
func (r *Runner) abort(res CaseResult, phase string, err error) CaseResult {
	res.Aborted = true
	res.AbortReason = fmt.Sprintf("%s: %s", phase, errMessage(err))
	slog.Error("benchmark-fall abgebrochen", "case", res.Case.Name, "phase", phase, "fehler", err)
	return res
}

// errMessage bevorzugt die Engine-Fehlermeldung gegenueber dem Wrapper-Text.
func errMessage(err error) string {
	var ee *engine.EngineError
	if errors.As(err, &ee) {
		return ee.Message
	}
	return err.Error()
}
