package match

import (
	"strings"
	"unicode"
)

// stopWords are common English words that add noise to requirement matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "strong": true,
	"good": true, "able": true, "years": true, "year": true, "plus": true,
	"experience": true, "knowledge": true, "ability": true, "skills": true,
	"required": true, "preferred": true, "familiarity": true, "proficiency": true,
}

// tokenize lowercases text into a keyword set, skipping stop words and
// tokens shorter than three runes. + # . count as word characters so
// "c++", "c#" and "node.js" survive intact.
func tokenize(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".")
		if stopWords[w] {
			return
		}
		// "c#" and "go" style names are real signal despite their length.
		if len([]rune(w)) >= 3 || strings.ContainsAny(w, "+#") || w == "go" {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// coverage is the fraction of requirement tokens present in the block.
// Both inputs fixed means the output is fixed; no randomness anywhere.
func coverage(req, block map[string]bool) float64 {
	if len(req) == 0 {
		return 0
	}
	hit := 0
	for t := range req {
		if block[t] {
			hit++
		}
	}
	return float64(hit) / float64(len(req))
}
