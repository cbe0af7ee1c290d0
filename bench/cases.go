// MODUL: cases
// ZWECK: Feste Tabelle der Benchmark-Faelle (Netzgroessen und Lauf-Anzahl)
// INPUT: Keine
// OUTPUT: Geordnete Liste unveraenderlicher Case-Deskriptoren
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: Keine
// HINWEISE: Statische Konfiguration, kein Plugin-Mechanismus

package bench

// Case beschreibt einen Benchmark-Fall. Die Faelle sind unabhaengig,
// es gibt keinen geteilten Zustand ausser der Seed-Konvention.
type Case struct {
	Name         string `json:"name"`
	InputDim     int    `json:"input_dim"`
	OutputDim    int    `json:"output_dim"`
	HiddenWidth  int    `json:"hidden_width"`
	HiddenLayers int    `json:"hidden_layers"`
	Runs         int    `json:"runs"`
}

// Standard-Parameter der Suite: MNIST-artige Eingabe, 10 Klassen, 100 Laeufe.
const (
	defaultInputDim  = 784
	defaultOutputDim = 10
	defaultRuns      = 100
)

// DefaultCases liefert die feste 10-Fall-Tabelle von S1 bis XL2.
// Reihenfolge ist Ausfuehrungs-Reihenfolge.
func DefaultCases() []Case {
	shapes := []struct {
		name         string
		hiddenWidth  int
		hiddenLayers int
	}{
		{"S1", 64, 1},
		{"S2", 128, 1},
		{"S3", 256, 1},
		{"M1", 256, 2},
		{"M2", 384, 2},
		{"M3", 512, 2},
		{"L1", 768, 3},
		{"L2", 1024, 3},
		{"XL1", 1536, 4},
		{"XL2", 2048, 4},
	}

	cases := make([]Case, 0, len(shapes))
	for _, s := range shapes {
		cases = append(cases, Case{
			Name:         s.name,
			InputDim:     defaultInputDim,
			OutputDim:    defaultOutputDim,
			HiddenWidth:  s.hiddenWidth,
			HiddenLayers: s.hiddenLayers,
			Runs:         defaultRuns,
		})
	}
	return cases
}
