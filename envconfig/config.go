// config.go - Environment-Konfiguration fuer den Teleport-Benchmark
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (TELEPORT_DEBUG)
// - Library: Pfad-Override fuer die Engine-Bibliothek (TELEPORT_LIBRARY)
// - Var: Rohzugriff auf Environment-Variablen
// - AsMap: Gibt alle Konfigurationen als Map zurueck
//
// Der Benchmark-Kern selbst liest keine Environment-Variablen;
// beide Variablen wirken nur auf der CLI-Schicht.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via TELEPORT_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TELEPORT_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Library gibt den Pfad-Override fuer die Engine-Bibliothek zurueck
// Konfigurierbar via TELEPORT_LIBRARY
// Default: leer (die CLI faellt auf den Plattform-Namen zurueck)
func Library() string {
	return Var("TELEPORT_LIBRARY")
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TELEPORT_DEBUG":   {"TELEPORT_DEBUG", LogLevel(), "Show additional debug information (e.g. TELEPORT_DEBUG=1)"},
		"TELEPORT_LIBRARY": {"TELEPORT_LIBRARY", Library(), "Path to the Paragon engine shared library"},
	}
}
