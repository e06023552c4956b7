// Package annotatortest provides an in-memory Annotator for tests.
package annotatortest

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

var (
	reSentence = regexp.MustCompile(`[^.!?]+[.!?]*`)
	reToken    = regexp.MustCompile(`[\p{L}\p{N}'’]+|[^\s\p{L}\p{N}]`)
)

// Tag is the annotation attached to a surface form.
type Tag struct {
	POS string
	Dep string
}

// Annotator splits on sentence punctuation and tags tokens from Lexicon.
// Unknown words get empty tags.
type Annotator struct {
	Lexicon map[string]Tag
	// Err, when set, is returned for every call.
	Err error

	mu    sync.Mutex
	calls []lang.Language
}

// New returns an Annotator with an optional lexicon.
func New(lexicon map[string]Tag) *Annotator {
	return &Annotator{Lexicon: lexicon}
}

func (a *Annotator) Annotate(_ context.Context, text string, language lang.Language) ([]annotator.Sentence, error) {
	a.mu.Lock()
	a.calls = append(a.calls, language)
	a.mu.Unlock()

	if a.Err != nil {
		return nil, &annotator.Error{Language: language, Err: a.Err}
	}

	var sentences []annotator.Sentence
	for _, raw := range reSentence.FindAllString(text, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		s := annotator.Sentence{Index: len(sentences), Text: raw}
		for _, tok := range reToken.FindAllString(raw, -1) {
			tag := a.Lexicon[tok]
			s.Tokens = append(s.Tokens, annotator.Token{Text: tok, POS: tag.POS, Dep: tag.Dep})
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}

// Calls returns the languages requested so far, in order.
func (a *Annotator) Calls() []lang.Language {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]lang.Language(nil), a.calls...)
}
