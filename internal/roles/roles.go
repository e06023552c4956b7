// Package roles groups annotated tokens into subject, verb and complement
// per sentence.
package roles

import (
	"strings"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
)

// Role is the bucket a token is assigned to.
type Role int

const (
	None Role = iota
	Subject
	Verb
	Complement
)

func (r Role) String() string {
	switch r {
	case Subject:
		return "subject"
	case Verb:
		return "verb"
	case Complement:
		return "complement"
	default:
		return "none"
	}
}

// Record is the role breakdown of one sentence. Each field holds the matching
// token texts in document order, joined by single spaces.
type Record struct {
	Subject    string `json:"subject"`
	Verb       string `json:"verb"`
	Complement string `json:"complement"`
}

type rule struct {
	role  Role
	match func(annotator.Token) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{Subject, func(t annotator.Token) bool { return strings.Contains(t.Dep, "subj") }},
	{Verb, func(t annotator.Token) bool { return t.POS == "VERB" }},
	{Complement, func(t annotator.Token) bool { return strings.Contains(t.Dep, "obj") || t.Dep == "iobj" }},
}

// Classify returns the role of a single token.
func Classify(t annotator.Token) Role {
	for _, r := range rules {
		if r.match(t) {
			return r.role
		}
	}
	return None
}

// Extract returns one Record per sentence, in sentence order.
func Extract(sentences []annotator.Sentence) []Record {
	records := make([]Record, 0, len(sentences))
	for _, s := range sentences {
		records = append(records, extractSentence(s))
	}
	return records
}

func extractSentence(s annotator.Sentence) Record {
	var subj, verb, comp []string
	for _, t := range s.Tokens {
		switch Classify(t) {
		case Subject:
			subj = append(subj, t.Text)
		case Verb:
			verb = append(verb, t.Text)
		case Complement:
			comp = append(comp, t.Text)
		}
	}
	return Record{
		Subject:    strings.Join(subj, " "),
		Verb:       strings.Join(verb, " "),
		Complement: strings.Join(comp, " "),
	}
}
