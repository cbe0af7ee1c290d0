// MODUL: payload_test
// ZWECK: Unit-Tests fuer Klassifikation und Feld-Extraktion der Engine-Antworten
// INPUT: Keine
// OUTPUT: Test-Ergebnisse
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: testing (stdlib), payload.go
// HINWEISE: Deckt beide Erfolgs-Formen (Objekt und Array) und die Fehler-Form ab

package engine

import (
	"errors"
	"testing"
)

// =============================================================================
// Klassifikations-Tests
// =============================================================================

// TestClassifyErrorShape prueft, dass die Fehler-Form zu EngineError wird.
func TestClassifyErrorShape(t *testing.T) {
	_, err := Classify([]byte(`{"error":"failed to initialize GPU: no adapter"}`))
	if err == nil {
		t.Fatal("Classify: Fehler-Form sollte einen Fehler liefern")
	}

	var ee *EngineError
	if !errors.As(err, &ee) {
		t.Fatalf("Classify: erwartet *EngineError, bekommen %T", err)
	}
	if ee.Message != "failed to initialize GPU: no adapter" {
		t.Errorf("EngineError.Message: bekommen %q", ee.Message)
	}
}

// TestClassifySuccessObject prueft die Objekt-Form mit Domaenen-Feldern.
func TestClassifySuccessObject(t *testing.T) {
	p, err := Classify([]byte(`{"handle": 7, "type":"Network[float32]","gpu":true}`))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}

	h, err := p.HandleID()
	if err != nil {
		t.Fatalf("HandleID: unerwarteter Fehler: %v", err)
	}
	if h != 7 {
		t.Errorf("HandleID: erwartet 7, bekommen %d", h)
	}
}

// TestClassifySuccessArray prueft die Array-Form (Methoden-Rueckgabewerte).
func TestClassifySuccessArray(t *testing.T) {
	p, err := Classify([]byte(`[[0.5,0.25]]`))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}
	if _, err := p.HandleID(); err == nil {
		t.Error("HandleID: Array-Form sollte kein handle-Feld liefern")
	}
}

// TestClassifyMalformed prueft leere und kaputte Antworten.
func TestClassifyMalformed(t *testing.T) {
	for _, data := range []string{"", "   ", "{broken", "[1,2"} {
		if _, err := Classify([]byte(data)); err == nil {
			t.Errorf("Classify(%q): erwartet Fehler, bekommen nil", data)
		}
	}
}

// TestClassifyWhitespaceHandle prueft Toleranz gegen Whitespace um Feldwerte.
func TestClassifyWhitespaceHandle(t *testing.T) {
	p, err := Classify([]byte("  {\"handle\" :\t42 }\n"))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}
	h, err := p.HandleID()
	if err != nil || h != 42 {
		t.Errorf("HandleID: erwartet 42, bekommen %d (err=%v)", h, err)
	}
}

// =============================================================================
// Output-Extraktions-Tests
// =============================================================================

// TestOutputValuesObjectShape liest aus {"output":[[...]]}.
func TestOutputValuesObjectShape(t *testing.T) {
	p, err := Classify([]byte(`{"output":[[0.1,0.2,0.3]]}`))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}

	got := p.OutputValues(3)
	want := []float32{0.1, 0.2, 0.3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OutputValues[%d]: erwartet %f, bekommen %f", i, want[i], got[i])
		}
	}
}

// TestOutputValuesArrayShapes liest aus flachen und geschachtelten Rueckgabe-Arrays.
func TestOutputValuesArrayShapes(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"flach", `[[1.5,2.5]]`},
		{"geschachtelt", `[[[1.5,2.5]]]`},
		{"mit-fehlerwert", `[[1.5,2.5],null]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Classify([]byte(tc.data))
			if err != nil {
				t.Fatalf("Classify: unerwarteter Fehler: %v", err)
			}
			got := p.OutputValues(2)
			if got[0] != 1.5 || got[1] != 2.5 {
				t.Errorf("OutputValues: erwartet [1.5 2.5], bekommen %v", got)
			}
		})
	}
}

// TestOutputValuesTruncated prueft das nachsichtige Auffuellen mit 0.0.
func TestOutputValuesTruncated(t *testing.T) {
	p, err := Classify([]byte(`{"output":[[0.5]]}`))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}

	got := p.OutputValues(3)
	if len(got) != 3 {
		t.Fatalf("OutputValues: erwartet Laenge 3, bekommen %d", len(got))
	}
	if got[0] != 0.5 || got[1] != 0 || got[2] != 0 {
		t.Errorf("OutputValues: erwartet [0.5 0 0], bekommen %v", got)
	}
}

// TestOutputValuesMissing prueft Antworten ganz ohne Zahlenreihe.
func TestOutputValuesMissing(t *testing.T) {
	p, err := Classify([]byte(`{"status":"weights perturbed"}`))
	if err != nil {
		t.Fatalf("Classify: unerwarteter Fehler: %v", err)
	}

	got := p.OutputValues(2)
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("OutputValues ohne Output: erwartet Nullen, bekommen %v", got)
	}
}
