package nlp

import "strings"

var foldReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ñ", "n",
)

// Fold lowercases text and strips Spanish diacritics so that user input like
// "Merida" matches "Mérida". Users mix accented and unaccented spellings freely.
func Fold(s string) string {
	return foldReplacer.Replace(strings.ToLower(s))
}

// FoldContains reports whether haystack contains needle, ignoring case and accents.
func FoldContains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
