package nlp

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

// SpellService proposes a correction for a single token. Implementations wrap
// an external spelling service; they should never be asked about tokens the
// preserve rules already claimed.
type SpellService interface {
	Correct(ctx context.Context, word string) (string, error)
}

// domainVocabulary lists company and logistics terms that must never be
// "corrected" into ordinary Spanish words.
var domainVocabulary = map[string]struct{}{
	"argo": {}, "almacenadora": {}, "almacén": {}, "almacen": {}, "logística": {},
	"bajio": {}, "bajío": {}, "córdoba": {}, "golfo": {}, "noreste": {}, "occidente": {},
	"peninsula": {}, "puebla": {}, "querétaro": {}, "yucatán": {}, "jalisco": {},
	"mercancia": {}, "mercancía": {}, "producto": {}, "cliente": {}, "pedido": {},
	"factura": {}, "servicio": {}, "almacenamiento": {}, "distribución": {},
}

var codePattern = regexp.MustCompile(`^[A-Z0-9\-_]+$`)

// Normalizer runs spelling correction over free text while preserving domain
// terms, proper nouns, acronyms and codes. The output is classifier input, not
// display text: original whitespace is collapsed to single spaces.
type Normalizer struct {
	spell  SpellService
	vocab  map[string]struct{}
	logger *logging.Logger
}

// NewNormalizer creates a normalizer backed by the given spell service.
func NewNormalizer(spell SpellService, logger *logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Normalizer{
		spell:  spell,
		vocab:  domainVocabulary,
		logger: logger,
	}
}

// Normalize corrects spelling token by token. Any spell-service failure
// degrades to returning the input text unmodified.
func (n *Normalizer) Normalize(ctx context.Context, text string) string {
	if n.spell == nil {
		return text
	}

	words := strings.Fields(text)
	corrected := make([]string, 0, len(words))

	for _, word := range words {
		if n.shouldPreserve(word) {
			corrected = append(corrected, word)
			continue
		}

		proposal, err := n.spell.Correct(ctx, word)
		if err != nil {
			n.logger.Warn("spell service failed, keeping text as-is", "error", err)
			return text
		}

		if isValidCorrection(word, proposal) {
			corrected = append(corrected, proposal)
		} else {
			corrected = append(corrected, word)
		}
	}

	return strings.Join(corrected, " ")
}

// shouldPreserve reports whether a token must pass through untouched.
func (n *Normalizer) shouldPreserve(word string) bool {
	if _, ok := n.vocab[strings.ToLower(word)]; ok {
		return true
	}

	runes := []rune(word)

	// Proper-noun heuristic: leading uppercase letter.
	if len(runes) > 1 && unicode.IsUpper(runes[0]) {
		return true
	}

	// Acronym heuristic: short and fully uppercase.
	if len(runes) <= 6 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
		return true
	}

	if len(runes) <= 2 {
		return true
	}

	for _, r := range runes {
		if unicode.IsDigit(r) {
			return true
		}
	}

	// Email-like tokens.
	if strings.Contains(word, "@") && strings.Contains(word, ".") {
		return true
	}

	// Codes and references, e.g. shipment or pedimento numbers.
	if len(runes) >= 3 && codePattern.MatchString(word) {
		return true
	}

	return false
}

// isValidCorrection decides whether a proposed correction should replace the
// original token. Rejections keep the original.
func isValidCorrection(original, correction string) bool {
	origRunes := []rune(original)
	corrRunes := []rune(correction)

	diff := len(origRunes) - len(corrRunes)
	if diff < -2 || diff > 2 {
		return false
	}

	lowerOrig := strings.ToLower(original)
	lowerCorr := strings.ToLower(correction)
	if lowerOrig == lowerCorr {
		return false
	}

	// Differs only in accents: not worth touching.
	if lowerOrig == Fold(correction) || Fold(original) == Fold(correction) {
		return false
	}

	// A one-edit change on a longer token is more likely a proper noun than a typo.
	if len(origRunes) > 3 && Levenshtein(original, correction) <= 1 {
		return false
	}

	return true
}

// Levenshtein computes the exact edit distance between two strings, by rune.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ra {
		curr[0] = i + 1
		for j, cb := range rb {
			cost := 0
			if ca != cb {
				cost = 1
			}
			insertion := prev[j+1] + 1
			deletion := curr[j] + 1
			substitution := prev[j] + cost
			curr[j+1] = min(insertion, deletion, substitution)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
