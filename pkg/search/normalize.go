package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Permite que "Café" y "cafe" coincidan en búsquedas de productos.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve el texto en minúsculas y sin acentos para comparación.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		// Si la transformación falla (entrada no UTF-8), comparar tal cual
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches indica si needle aparece en haystack ignorando mayúsculas y acentos.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
