// MODUL: clock
// ZWECK: Monotone Zeitquelle in Sekunden fuer die Messphasen
// INPUT: Keine
// OUTPUT: Clock-Funktion (Sekunden seit Prozess-Start)
// NEBENEFFEKTE: Keine
// ABHAENGIGKEITEN: time (stdlib)
// HINWEISE: time liest bereits die monotone Plattform-Uhr, Vergleich nur innerhalb eines Laufs

package bench

import "time"

// Clock liefert monoton nicht-fallende Sekunden ab einem beliebigen,
// prozess-stabilen Ursprung.
type Clock func() float64

// processStart ist der gemeinsame Ursprung aller Now-Ablesungen.
var processStart = time.Now()

// Now ist die Standard-Clock der Suite.
func Now() float64 {
	return time.Since(processStart).Seconds()
}
