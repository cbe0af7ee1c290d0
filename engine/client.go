// MODUL: client
// ZWECK: Adapter ueber die Engine-ABI mit Puffer- und Handle-Lebenszyklus-Disziplin
// INPUT: ABI-Implementierung (cgo-Binding oder Test-Fake)
// OUTPUT: Geparste Payloads, Handles, Output-Vektoren
// NEBENEFFEKTE: Fremd-Puffer werden sofort nach dem Kopieren freigegeben
// ABHAENGIGKEITEN: abi.go, payload.go, log/slog (stdlib)
// HINWEISE: Kein Fremd-Zeiger ueberlebt take(); das ist die zentrale Invariante

package engine

import (
	"fmt"
	"log/slog"
)

// Client kapselt jeden Engine-Aufruf in dasselbe Protokoll:
// aufrufen, Inhalt kopieren, Fremd-Puffer freigeben, klassifizieren.
type Client struct {
	abi ABI
}

// NewClient erstellt einen Client ueber einer ABI-Implementierung.
func NewClient(abi ABI) *Client {
	return &Client{abi: abi}
}

// =============================================================================
// Puffer-Disziplin
// =============================================================================

// take kopiert den Inhalt eines Fremd-Puffers in lokalen Speicher und gibt
// den Puffer sofort frei. Die Kopie passiert vor jedem weiteren
// Engine-Aufruf, der den Fremd-Allocator wiederverwenden koennte.
func take(raw RawBuffer) []byte {
	if raw == nil {
		return nil
	}
	src := raw.Bytes()
	local := make([]byte, len(src))
	copy(local, src)
	raw.Free()
	return local
}

// roundtrip fuehrt take und Klassifikation fuer einen Aufruf aus.
func (c *Client) roundtrip(op string, raw RawBuffer) (Payload, error) {
	data := take(raw)
	slog.Debug("engine-antwort", "op", op, "payload", string(data))

	p, err := Classify(data)
	if err != nil {
		return Payload{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// =============================================================================
// Lebenszyklus-Operationen
// =============================================================================

// CreateNetwork erzeugt ein Netzwerk aus den drei Deskriptor-JSONs und
// liefert Handle plus die vollstaendige Antwort fuer den Report.
func (c *Client) CreateNetwork(layersJSON, activationsJSON, fullyJSON string, useGPU, debug bool) (Handle, Payload, error) {
	p, err := c.roundtrip("NewNetwork", c.abi.NewNetworkFloat32(layersJSON, activationsJSON, fullyJSON, useGPU, debug))
	if err != nil {
		return 0, Payload{}, err
	}
	h, err := p.HandleID()
	if err != nil {
		return 0, Payload{}, err
	}
	return h, p, nil
}

// PerturbWeights stoert die Gewichte des Netzwerks deterministisch.
func (c *Client) PerturbWeights(h Handle, magnitude float64, seed int64) (Payload, error) {
	return c.roundtrip("PerturbWeights", c.abi.PerturbWeights(h, magnitude, seed))
}

// EnableGPU schaltet das Netzwerk auf das GPU-Backend um.
// Ein Fehler bedeutet hier typischerweise: kein GPU-Backend auf diesem Host.
func (c *Client) EnableGPU(h Handle) (Payload, error) {
	return c.roundtrip("EnableGPU", c.abi.EnableGPU(h))
}

// DisableGPU schaltet das Netzwerk auf das CPU-Backend um.
func (c *Client) DisableGPU(h Handle) (Payload, error) {
	return c.roundtrip("DisableGPU", c.abi.DisableGPU(h))
}

// Forward fuehrt einen Forward-Pass mit dem Eingabe-Tensor aus.
// Das Ergebnis wird verworfen, nur der Fehler-Status interessiert.
func (c *Client) Forward(h Handle, inputJSON string) error {
	_, err := c.roundtrip("Forward", c.abi.Call(h, "Forward", inputJSON))
	return err
}

// ExtractOutput liest die ersten n Output-Werte des letzten Forward-Passes.
func (c *Client) ExtractOutput(h Handle, n int) ([]float32, error) {
	p, err := c.roundtrip("ExtractOutput", c.abi.Call(h, "ExtractOutput", "[]"))
	if err != nil {
		return nil, err
	}
	return p.OutputValues(n), nil
}

// Release gibt den Engine-Zustand zum Handle frei.
// Hoechstens einmal pro Handle aufrufen, die Engine garantiert keine Idempotenz.
func (c *Client) Release(h Handle) {
	c.abi.FreeNetwork(h)
}
