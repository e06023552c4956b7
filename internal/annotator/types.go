package annotator

// Token is one annotated word or punctuation mark.
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
	Dep  string `json:"dep"`
}

// Sentence is a run of tokens with its position in the annotated text.
type Sentence struct {
	Index  int     `json:"-"`
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}
