package summarizer

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// wordFrequencies counts scorable tokens by exact surface text and divides
// by the highest count, so every weight is in (0,1] and the top word is 1.
func wordFrequencies(sentences []annotator.Sentence) map[string]float64 {
	counts := make(map[string]int)
	maxCount := 0
	for _, s := range sentences {
		for _, t := range s.Tokens {
			if !scorable(t.Text) {
				continue
			}
			counts[t.Text]++
			if counts[t.Text] > maxCount {
				maxCount = counts[t.Text]
			}
		}
	}

	freq := make(map[string]float64, len(counts))
	for word, n := range counts {
		freq[word] = float64(n) / float64(maxCount)
	}
	return freq
}

// scoreSentences sums the weights of each sentence's tokens. Sentences with
// no weighted token are left out.
func scoreSentences(sentences []annotator.Sentence, freq map[string]float64) map[int]float64 {
	scores := make(map[int]float64)
	for _, s := range sentences {
		for _, t := range s.Tokens {
			if w, ok := freq[t.Text]; ok {
				scores[s.Index] += w
			}
		}
	}
	return scores
}

// topSentences returns the k best-scored sentences, highest first. Equal
// scores keep document order.
func topSentences(sentences []annotator.Sentence, scores map[int]float64, k int) []annotator.Sentence {
	byIndex := make(map[int]annotator.Sentence, len(sentences))
	candidates := make([]int, 0, len(scores))
	for _, s := range sentences {
		if _, ok := scores[s.Index]; ok {
			byIndex[s.Index] = s
			candidates = append(candidates, s.Index)
		}
	}

	slices.SortFunc(candidates, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	selected := make([]annotator.Sentence, 0, k)
	for _, idx := range candidates[:k] {
		selected = append(selected, byIndex[idx])
	}
	return selected
}

// selectSentences runs the whole frequency pass over pivot-language
// sentences.
func selectSentences(sentences []annotator.Sentence, p Precision) ([]annotator.Sentence, error) {
	if len(sentences) == 0 {
		return nil, ErrEmptyContent
	}

	freq := wordFrequencies(sentences)
	if len(freq) == 0 {
		return nil, ErrEmptyContent
	}

	scores := scoreSentences(sentences, freq)
	k := p.SelectionCount(len(sentences))
	return topSentences(sentences, scores, k), nil
}

func joinSentences(sentences []annotator.Sentence) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

func scorable(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if lang.IsStopWord(lang.Pivot, strings.ToLower(text)) {
		return false
	}
	return !isPunctuation(text)
}

func isPunctuation(text string) bool {
	for _, r := range text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
