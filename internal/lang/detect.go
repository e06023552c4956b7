package lang

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// detectWindow is how many leading words are inspected.
const detectWindow = 10

var markers = map[Language]map[string]struct{}{
	French:  set("le", "la", "les", "un", "une", "des", "et", "est"),
	English: set("the", "a", "an", "and", "is", "are", "were"),
	German:  set("der", "die", "das", "und", "ist"),
	Spanish: set("el", "la", "los", "las", "un", "una", "y", "es"),
}

var lower = cases.Lower(language.Und)

// Detect guesses the language of text from the stop words among its first
// ten words. Ties, including texts with no marker at all, resolve to the
// earliest language in Order, so unknown text is reported as French.
func Detect(text string) Language {
	words := strings.Fields(lower.String(text))
	if len(words) > detectWindow {
		words = words[:detectWindow]
	}

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}

	best := Order[0]
	bestScore := -1
	for _, l := range Order {
		score := 0
		for w := range seen {
			if _, ok := markers[l][w]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = l, score
		}
	}
	return best
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
