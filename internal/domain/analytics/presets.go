package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Atelie-api/internal/domain"
)

// ErrUnknownPreset período predefinido no reconocido.
var ErrUnknownPreset = domain.ErrUnknownPreset

// Preset período predefinido relativo a "ahora".
type Preset string

const (
	PresetToday   Preset = "today"
	PresetWeek    Preset = "week"
	PresetMonth   Preset = "month"
	PresetQuarter Preset = "quarter"
	PresetYear    Preset = "year"
)

// Presets períodos soportados.
var Presets = []Preset{PresetToday, PresetWeek, PresetMonth, PresetQuarter, PresetYear}

// DateRange intervalo cerrado [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del intervalo, extremos incluidos.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParsePreset normaliza s (sin distinguir mayúsculas) a un Preset conocido.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// DateRangePreset resuelve el preset respecto de la hora local actual.
func DateRangePreset(p Preset) (DateRange, error) {
	return DateRangePresetAt(p, time.Now())
}

// DateRangePresetAt resuelve el preset respecto de now. End es siempre now;
// today arranca al inicio del día de now y el resto retrocede 7 días, 1, 3 o 12 meses.
func DateRangePresetAt(p Preset, now time.Time) (DateRange, error) {
	var start time.Time
	switch p {
	case PresetToday:
		y, m, d := now.Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case PresetWeek:
		start = now.AddDate(0, 0, -7)
	case PresetMonth:
		start = now.AddDate(0, -1, 0)
	case PresetQuarter:
		start = now.AddDate(0, -3, 0)
	case PresetYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return DateRange{Start: start, End: now}, nil
}
