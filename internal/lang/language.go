package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported ISO 639-1 codes.
type Language string

const (
	French  Language = "fr"
	English Language = "en"
	German  Language = "de"
	Spanish Language = "es"
)

// Pivot is the language all scoring runs in.
const Pivot = English

// Order is the fixed priority list used to break detection ties.
var Order = []Language{French, English, German, Spanish}

var names = map[Language]string{
	French:  "French",
	English: "English",
	German:  "German",
	Spanish: "Spanish",
}

// Display names accepted as input, including the French labels of the
// original form.
var aliases = map[string]Language{
	"french":   French,
	"français": French,
	"francais": French,
	"english":  English,
	"anglais":  English,
	"german":   German,
	"allemand": German,
	"deutsch":  German,
	"spanish":  Spanish,
	"espagnol": Spanish,
	"español":  Spanish,
}

// Name returns the English display name, used in translation prompts.
func (l Language) Name() string {
	if n, ok := names[l]; ok {
		return n
	}
	return string(l)
}

func (l Language) String() string {
	return string(l)
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := names[l]
	return ok
}

// Parse normalizes a code, BCP 47 tag or display name to a supported language.
func Parse(s string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", fmt.Errorf("empty language")
	}
	if l, ok := aliases[key]; ok {
		return l, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	l := Language(base.String())
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}
