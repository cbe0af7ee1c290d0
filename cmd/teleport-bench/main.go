// MODUL: teleport-bench/main
// ZWECK: CLI fuer den Paragon CPU-vs-GPU Benchmark ueber die Teleport-C-ABI
// INPUT: CLI-Flags (--lib, --runs, --warmup, --tolerance, --output-json, --verbose)
// OUTPUT: Benchmark-Report pro Fall plus Zusammenfassung auf stdout
// NEBENEFFEKTE: Laedt die Engine-Shared-Library, optional JSON-Datei
// ABHAENGIGKEITEN: bench, engine, envconfig, logutil, cobra
// HINWEISE: Ohne Argumente laeuft die feste 10-Fall-Tabelle; Exit-Code 0 bei normalem Durchlauf

package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openfluke/teleport/bench"
	"github.com/openfluke/teleport/engine"
	"github.com/openfluke/teleport/envconfig"
	"github.com/openfluke/teleport/logutil"
)

// ============================================================================
// CLI-Konfiguration
// ============================================================================

// cliOptions enthaelt alle CLI-Flags.
type cliOptions struct {
	libPath    string
	runs       int
	warmup     int
	tolerance  float64
	outputJSON string
	verbose    bool
}

// NewCLI - Erstellt das Benchmark-CLI
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	var opts cliOptions

	rootCmd := &cobra.Command{
		Use:           "teleport-bench",
		Short:         "Paragon CPU vs GPU micro-benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.libPath, "lib", "", "Pfad zur Engine-Bibliothek (Default: ./"+engine.DefaultLibraryName()+")")
	rootCmd.Flags().IntVar(&opts.runs, "runs", 0, "Forward-Laeufe pro Messung (Default: 100 aus der Fall-Tabelle)")
	rootCmd.Flags().IntVar(&opts.warmup, "warmup", 10, "Warmup-Laeufe pro Phase")
	rootCmd.Flags().Float64Var(&opts.tolerance, "tolerance", 1e-4, "Absolut-Toleranz der Paritaetspruefung")
	rootCmd.Flags().StringVar(&opts.outputJSON, "output-json", "", "JSON-Report-Pfad (optional)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug-Ausgabe (Engine-Payloads)")

	appendEnvDocs(rootCmd)
	return rootCmd
}

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command) {
	m := envconfig.AsMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	envUsage := `
Environment Variables:
`
	for _, k := range keys {
		envUsage += fmt.Sprintf("      %-24s   %s\n", m[k].Name, m[k].Description)
	}
	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// ============================================================================
// Suite-Ausfuehrung
// ============================================================================

func runSuite(opts cliOptions) error {
	level := envconfig.LogLevel()
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(logutil.NewLogger(os.Stderr, level))

	libPath := opts.libPath
	if libPath == "" {
		libPath = envconfig.Library()
	}
	if libPath == "" {
		libPath = "./" + engine.DefaultLibraryName()
	}

	abi, err := engine.Load(libPath)
	if err != nil {
		return err
	}
	slog.Info("engine-bibliothek geladen", "pfad", libPath)

	fmt.Println("Simple Paragon CPU vs GPU Benchmark (portable)")
	fmt.Println("==============================================")

	cfg := bench.DefaultConfig()
	cfg.WarmupRuns = opts.warmup
	cfg.Tolerance = opts.tolerance

	cases := bench.DefaultCases()
	if opts.runs > 0 {
		for i := range cases {
			cases[i].Runs = opts.runs
		}
	}

	runner := bench.NewRunner(engine.NewClient(abi), cfg)
	results := runner.RunSuite(cases, func(res bench.CaseResult) {
		bench.PrintCase(os.Stdout, res)
	})
	bench.PrintSummary(os.Stdout, results)

	if opts.outputJSON != "" {
		report := bench.NewSuiteReport(results)
		if err := report.ExportJSON(opts.outputJSON); err != nil {
			return fmt.Errorf("json-export: %w", err)
		}
		fmt.Printf("\nJSON-Report: %s\n", opts.outputJSON)
	}
	return nil
}

// ============================================================================
// Main-Funktion
// ============================================================================

func main() {
	if err := NewCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(1)
	}
}
