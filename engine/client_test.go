// MODUL: client_test
// ZWECK: Unit-Tests fuer die Puffer-Disziplin und die Operationen des Clients
// INPUT: Keine
// OUTPUT: Test-Ergebnisse
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: testing (stdlib), testify, client.go
// HINWEISE: Der Fake zaehlt Free-Aufrufe pro Puffer und pro Handle

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Fake-ABI
// =============================================================================

// fakeBuffer zaehlt seine Free-Aufrufe.
type fakeBuffer struct {
	data  []byte
	freed int
}

func (b *fakeBuffer) Bytes() []byte { return b.data }
func (b *fakeBuffer) Free()         { b.freed++ }

// fakeABI liefert pro Operation eine vorgegebene Antwort und protokolliert
// alle ausgegebenen Puffer sowie FreeNetwork-Aufrufe.
type fakeABI struct {
	responses map[string]string
	buffers   []*fakeBuffer
	freedNets []Handle
}

func (f *fakeABI) reply(op string) RawBuffer {
	b := &fakeBuffer{data: []byte(f.responses[op])}
	f.buffers = append(f.buffers, b)
	return b
}

func (f *fakeABI) NewNetworkFloat32(_, _, _ string, _, _ bool) RawBuffer {
	return f.reply("new")
}
func (f *fakeABI) PerturbWeights(Handle, float64, int64) RawBuffer { return f.reply("perturb") }
func (f *fakeABI) EnableGPU(Handle) RawBuffer                      { return f.reply("enable") }
func (f *fakeABI) DisableGPU(Handle) RawBuffer                     { return f.reply("disable") }
func (f *fakeABI) Call(_ Handle, method, _ string) RawBuffer       { return f.reply(method) }
func (f *fakeABI) FreeNetwork(h Handle)                            { f.freedNets = append(f.freedNets, h) }

// assertAllBuffersFreedOnce prueft die zentrale Puffer-Invariante.
func assertAllBuffersFreedOnce(t *testing.T, f *fakeABI) {
	t.Helper()
	for i, b := range f.buffers {
		assert.Equalf(t, 1, b.freed, "Puffer %d: Free-Aufrufe", i)
	}
}

// =============================================================================
// Client-Tests
// =============================================================================

// TestCreateNetwork prueft Handle-Extraktion und Puffer-Freigabe.
func TestCreateNetwork(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"new": `{"handle":3,"type":"Network[float32]","gpu":false}`,
	}}
	c := NewClient(f)

	h, p, err := c.CreateNetwork("[]", "[]", "[]", true, false)
	require.NoError(t, err)
	assert.Equal(t, Handle(3), h)
	assert.Contains(t, p.String(), "Network[float32]")
	assertAllBuffersFreedOnce(t, f)
}

// TestCreateNetworkError prueft die Fehler-Form beim Erzeugen.
func TestCreateNetworkError(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"new": `{"error":"layers: unexpected end of JSON input"}`,
	}}
	c := NewClient(f)

	_, _, err := c.CreateNetwork("[", "[]", "[]", true, false)
	require.Error(t, err)

	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Contains(t, ee.Message, "layers")
	assertAllBuffersFreedOnce(t, f)

	// Kein Handle entstanden, also darf auch nichts freigegeben worden sein
	assert.Empty(t, f.freedNets)
}

// TestForwardAndExtract prueft den Mess-Pfad Forward + ExtractOutput.
func TestForwardAndExtract(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"Forward":       `[null]`,
		"ExtractOutput": `[[0.25,0.5,0.75]]`,
	}}
	c := NewClient(f)

	require.NoError(t, c.Forward(9, "[[[0.1]]]"))

	out, err := c.ExtractOutput(9, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.5, 0.75}, out)
	assertAllBuffersFreedOnce(t, f)
}

// TestEnableGPUUnavailable prueft den weichen GPU-Fehlerpfad.
func TestEnableGPUUnavailable(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"enable": `{"error":"failed to initialize GPU: no adapter found"}`,
	}}
	c := NewClient(f)

	_, err := c.EnableGPU(4)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assertAllBuffersFreedOnce(t, f)
}

// TestRelease prueft die Weitergabe an FreeNetwork.
func TestRelease(t *testing.T) {
	f := &fakeABI{responses: map[string]string{}}
	c := NewClient(f)

	c.Release(11)
	assert.Equal(t, []Handle{11}, f.freedNets)
}

// TestBufferCopyIndependent prueft, dass die lokale Kopie den Fremd-Puffer
// nicht ueberlebt referenziert: nach Free darf die Payload unveraendert sein.
func TestBufferCopyIndependent(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"perturb": `{"status":"weights perturbed"}`,
	}}
	c := NewClient(f)

	p, err := c.PerturbWeights(2, 0.1, 42)
	require.NoError(t, err)

	// Fremd-Puffer nachtraeglich verfaelschen; die Kopie bleibt stabil
	for i := range f.buffers[0].data {
		f.buffers[0].data[i] = 'X'
	}
	assert.Equal(t, `{"status":"weights perturbed"}`, p.String())
	assert.Equal(t, "weights perturbed", p.Status)
}

// TestErrorPayloadNotReadable dokumentiert, dass aus der Fehler-Form keine
// Domaenen-Felder gelesen werden: Classify liefert eine leere Payload.
func TestErrorPayloadNotReadable(t *testing.T) {
	f := &fakeABI{responses: map[string]string{
		"enable": `{"error":"nope","handle":5}`,
	}}
	c := NewClient(f)

	p, err := c.EnableGPU(5)
	require.Error(t, err)
	assert.Nil(t, p.Handle)
	assert.Empty(t, p.Raw)
}
