// MODUL: report
// ZWECK: Konsolen-Report pro Fall, Suite-Zusammenfassung und optionaler JSON-Export
// INPUT: CaseResult bzw. SuiteReport
// OUTPUT: Formatierte Tabellen auf einem Writer, JSON-Datei bei Export
// NEBENEFFEKTE: Dateisystem-Schreibzugriff nur bei ExportJSON
// ABHAENGIGKEITEN: tablewriter, encoding/json, fmt (stdlib)
// HINWEISE: Fehler eines Falls erscheinen inline, die Suite laeuft weiter

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// =============================================================================
// Fall-Report
// =============================================================================

// PrintCase schreibt den Report eines Falls: Form, Speicher-Schaetzung,
// Phasen-Zeiten, Speedup und Paritaets-Tabelle.
func PrintCase(w io.Writer, res CaseResult) {
	fmt.Fprintf(w, "\n=== Case: %s ===\n", res.Case.Name)
	fmt.Fprintf(w, "Shape: %s   (~weights %.2f MB)\n", shapeLine(res.Case), res.EstimatedVRAMMB)
	if res.CreateInfo != "" {
		fmt.Fprintf(w, "NewNetwork -> %s\n", res.CreateInfo)
	}

	if res.Aborted {
		fmt.Fprintf(w, "ABGEBROCHEN: %s\n", res.AbortReason)
		return
	}

	printMeasurement(w, "CPU", res.CPU)
	if res.GPU != nil {
		printMeasurement(w, "GPU", res.GPU)
		fmt.Fprintf(w, "  speed-up %.2fx\n", res.Speedup)
	} else if res.GPUSkipReason != "" {
		fmt.Fprintf(w, "\nGPU: uebersprungen (%s)\n", res.GPUSkipReason)
	}

	if res.Parity != nil {
		printParity(w, *res.Parity)
	}
}

// shapeLine formatiert die Topologie als "784 -> 64 -> 10".
func shapeLine(c Case) string {
	parts := make([]string, 0, c.HiddenLayers+2)
	parts = append(parts, strconv.Itoa(c.InputDim))
	for i := 0; i < c.HiddenLayers; i++ {
		parts = append(parts, strconv.Itoa(c.HiddenWidth))
	}
	parts = append(parts, strconv.Itoa(c.OutputDim))
	return strings.Join(parts, " -> ")
}

func printMeasurement(w io.Writer, label string, m *Measurement) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", label)
	fmt.Fprintf(w, "  time  %.6fs  (%.1f inf/s)\n", m.Elapsed, m.Throughput)
}

// printParity rendert die Paritaets-Tabelle im Stil der Listen-Ausgabe.
func printParity(w io.Writer, p ParityReport) {
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"IDX", "CPU", "GPU", "DELTA", "OK"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	for _, row := range p.Rows {
		ok := ""
		if row.Match {
			ok = "ja"
		}
		table.Append([]string{
			strconv.Itoa(row.Index),
			fmt.Sprintf("%9.5f", row.CPU),
			fmt.Sprintf("%9.5f", row.GPU),
			fmt.Sprintf("%9.5f", row.Diff),
			ok,
		})
	}
	table.Render()

	fmt.Fprintf(w, "\nMatch within %g: %d/%d\n", p.Tolerance, p.Matches, len(p.Rows))
}

// =============================================================================
// Suite-Zusammenfassung
// =============================================================================

// PrintSummary schreibt die Abschluss-Tabelle ueber alle Faelle.
func PrintSummary(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "\n=== Zusammenfassung ===")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CASE", "CPU INF/S", "GPU INF/S", "SPEEDUP", "PARITY", "STATUS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	for _, res := range results {
		table.Append(summaryRow(res))
	}
	table.Render()
}

func summaryRow(res CaseResult) []string {
	if res.Aborted {
		return []string{res.Case.Name, "-", "-", "-", "-", "abgebrochen"}
	}

	cpu, gpu, speedup, parity := "-", "-", "-", "-"
	status := "cpu-only"
	if res.CPU != nil {
		cpu = fmt.Sprintf("%.1f", res.CPU.Throughput)
	}
	if res.GPU != nil {
		gpu = fmt.Sprintf("%.1f", res.GPU.Throughput)
		speedup = fmt.Sprintf("%.2fx", res.Speedup)
		status = "ok"
	}
	if res.Parity != nil {
		parity = fmt.Sprintf("%d/%d", res.Parity.Matches, len(res.Parity.Rows))
	}
	return []string{res.Case.Name, cpu, gpu, speedup, parity, status}
}

// =============================================================================
// JSON-Export
// =============================================================================

// WriteJSON schreibt den Suite-Report eingerueckt auf einen Writer.
func (s *SuiteReport) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// ExportJSON schreibt den Suite-Report in eine Datei.
func (s *SuiteReport) ExportJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("json-datei erstellen: %w", err)
	}
	defer f.Close()
	return s.WriteJSON(f)
}
