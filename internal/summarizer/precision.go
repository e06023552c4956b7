package summarizer

import (
	"fmt"
	"strings"
)

// Precision controls summary length as a share of the source sentences.
type Precision string

const (
	High   Precision = "high"
	Medium Precision = "medium"
	Low    Precision = "low"
)

// Share of sentences kept, in percent. Integer math keeps the floor exact.
var precisionPercent = map[Precision]int{
	High:   30,
	Medium: 20,
	Low:    10,
}

var precisionAliases = map[string]Precision{
	"précis": High,
	"precis": High,
	"moyen":  Medium,
	"vague":  Low,
}

// ParsePrecision accepts high|medium|low and the labels précis|moyen|vague.
func ParsePrecision(s string) (Precision, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := precisionAliases[key]; ok {
		return p, nil
	}
	p := Precision(key)
	if _, ok := precisionPercent[p]; !ok {
		return "", fmt.Errorf("unknown precision %q (want high, medium or low)", s)
	}
	return p, nil
}

// Ratio is the fraction of sentences kept.
func (p Precision) Ratio() float64 {
	return float64(precisionPercent[p]) / 100
}

// SelectionCount is max(1, floor(n × ratio)).
func (p Precision) SelectionCount(n int) int {
	k := n * precisionPercent[p] / 100
	if k < 1 {
		return 1
	}
	return k
}
