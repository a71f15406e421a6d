// Package validators normaliza y valida valores escalares que llegan de formularios
// y de la API antes de pasar al motor de costeo.
package validators

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	anyTag      = regexp.MustCompile(`<[^>]*>`)
	emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SanitizeString elimina bloques <script>/<style> con su contenido, quita cualquier
// otra etiqueta, normaliza a NFC y recorta espacios.
func SanitizeString(s string) string {
	s = scriptBlock.ReplaceAllString(s, "")
	s = styleBlock.ReplaceAllString(s, "")
	s = anyTag.ReplaceAllString(s, "")
	return strings.TrimSpace(norm.NFC.String(s))
}

// SanitizeEmail recorta y pasa a minúsculas.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizePhone deja solo los dígitos.
func SanitizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPositiveNumber v > 0 y finito.
func IsPositiveNumber(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsNonEmptyString indica si queda texto tras recortar espacios.
func IsNonEmptyString(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) != ""
}

// IsValidBrazilianPhone acepta números de 10 (fijo) u 11 (celular) dígitos, con o sin formato.
func IsValidBrazilianPhone(phone string) bool {
	n := len(SanitizePhone(phone))
	return n == 10 || n == 11
}

// IsValidEmail validación de formato básica: algo@algo.algo sin espacios.
func IsValidEmail(email string) bool {
	return emailFormat.MatchString(email)
}

// IsFutureDate indica si t es posterior al momento actual.
func IsFutureDate(t time.Time) bool {
	return IsFutureDateAt(t, time.Now())
}

// IsFutureDateAt indica si t es estrictamente posterior a now.
func IsFutureDateAt(t, now time.Time) bool {
	return t.After(now)
}

// Clamp limita v al intervalo [lo, hi].
func Clamp[T int | int64 | float64](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// IsValidFileSize 0 < size <= maxSize.
func IsValidFileSize(size, maxSize int64) bool {
	return size > 0 && size <= maxSize
}

// IsValidFileType indica si contentType está entre los permitidos.
func IsValidFileType(contentType string, allowed []string) bool {
	return slices.Contains(allowed, contentType)
}

// SafeJSONParse decodifica raw en T; ante cualquier error devuelve fallback.
func SafeJSONParse[T any](raw string, fallback T) T {
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback
	}
	return out
}

// IsValidUUID acepta solo la forma canónica 8-4-4-4-12 (sin llaves ni prefijo urn).
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
