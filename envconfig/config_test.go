// config_test.go - Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"testing"
)

// TestLogLevel prueft die TELEPORT_DEBUG-Stufen.
func TestLogLevel(t *testing.T) {
	cases := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"0", slog.LevelInfo},
		{"false", slog.LevelInfo},
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", slog.Level(-8)},
	}

	for _, tc := range cases {
		t.Run("TELEPORT_DEBUG="+tc.value, func(t *testing.T) {
			t.Setenv("TELEPORT_DEBUG", tc.value)
			if got := LogLevel(); got != tc.want {
				t.Errorf("LogLevel: erwartet %v, bekommen %v", tc.want, got)
			}
		})
	}
}

// TestVarTrimming prueft das Entfernen von Quotes und Leerzeichen.
func TestVarTrimming(t *testing.T) {
	t.Setenv("TELEPORT_LIBRARY", `  "./teleport_amd64_linux.so"  `)
	if got := Library(); got != "./teleport_amd64_linux.so" {
		t.Errorf("Library: bekommen %q", got)
	}
}

// TestAsMap prueft, dass beide Variablen dokumentiert sind.
func TestAsMap(t *testing.T) {
	m := AsMap()
	for _, key := range []string{"TELEPORT_DEBUG", "TELEPORT_LIBRARY"} {
		if _, ok := m[key]; !ok {
			t.Errorf("AsMap: %s fehlt", key)
		}
	}
}
