package session

import (
	"strconv"
	"strings"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
)

// ordinalWords maps Spanish ordinal words and shorthand forms to a 1-based
// index. -1 means "the last one".
var ordinalWords = map[string]int{
	"primera": 1, "primero": 1, "1ra": 1, "1ro": 1,
	"segunda": 2, "segundo": 2, "2da": 2, "2do": 2,
	"tercera": 3, "tercero": 3, "3ra": 3, "3ro": 3,
	"cuarta": 4, "cuarto": 4, "4ta": 4, "4to": 4,
	"quinta": 5, "quinto": 5, "5ta": 5, "5to": 5,
	"sexta": 6, "sexto": 6, "6ta": 6, "6to": 6,
	"septima": 7, "septimo": 7, "7ma": 7, "7mo": 7,
	"octava": 8, "octavo": 8, "8va": 8, "8vo": 8,
	"novena": 9, "noveno": 9, "9na": 9, "9no": 9,
	"decima": 10, "decimo": 10, "10ma": 10, "10mo": 10,
	"ultima": -1, "ultimo": -1,
}

// ordinalIndex normalizes a reference token to a 1-based index (-1 for last).
func ordinalIndex(token string) (int, bool) {
	token = nlp.Fold(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}

	if idx, ok := ordinalWords[token]; ok {
		return idx, true
	}

	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n, true
	}

	return 0, false
}

// resolveOrdinal picks an entry from names by ordinal reference. The whole
// reference is tried first, then each word, so "la segunda opción" resolves.
// Non-ordinal references fall back to substring matching against the entries.
func resolveOrdinal(names []string, reference string) (string, bool) {
	if idx, ok := ordinalIndex(reference); ok {
		return pick(names, idx)
	}
	for _, field := range strings.Fields(reference) {
		if idx, ok := ordinalIndex(field); ok {
			return pick(names, idx)
		}
	}

	needle := nlp.Fold(strings.TrimSpace(reference))
	for _, name := range names {
		if strings.Contains(nlp.Fold(name), needle) {
			return name, true
		}
	}
	return "", false
}

func pick(names []string, idx int) (string, bool) {
	if idx == -1 {
		return names[len(names)-1], true
	}
	if idx >= 1 && idx <= len(names) {
		return names[idx-1], true
	}
	return "", false
}
