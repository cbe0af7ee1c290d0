// MODUL: parity
// ZWECK: Element-weiser Vergleich zweier Output-Vektoren gegen eine Absolut-Toleranz
// INPUT: CPU- und GPU-Werte, Toleranz
// OUTPUT: ParityReport mit Differenzen und Match-Anzahl
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: math (stdlib), results.go
// HINWEISE: Kuerzere Eingaben sind vorher mit 0.0 aufgefuellt (siehe engine.OutputValues)

package bench

import "math"

// CheckParity vergleicht cpu und gpu Index fuer Index. Ein Index gilt als
// Match, wenn die Absolut-Differenz unter der Toleranz liegt (strikt kleiner).
func CheckParity(cpu, gpu []float32, tolerance float64) ParityReport {
	n := len(cpu)
	if len(gpu) < n {
		n = len(gpu)
	}

	report := ParityReport{
		Tolerance: tolerance,
		Rows:      make([]ParityRow, 0, n),
	}
	for i := 0; i < n; i++ {
		diff := math.Abs(float64(cpu[i]) - float64(gpu[i]))
		row := ParityRow{
			Index: i,
			CPU:   cpu[i],
			GPU:   gpu[i],
			Diff:  diff,
			Match: diff < tolerance,
		}
		if row.Match {
			report.Matches++
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}
