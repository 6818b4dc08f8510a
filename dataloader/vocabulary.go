package dataloader

import "slices"

// Vocabulary is the slice of tokenizer state the loader consumes: the corpus encoded to
// token ids, plus the id used for padding. Encoding text into ids is the tokenizer's
// job and stays outside this package.
type Vocabulary interface {
	EncodedDocs() [][]int
	PadTokenID() int
}

// StaticVocabulary is a minimal slice-backed [Vocabulary], useful for tests and for
// callers that already hold pre-encoded corpora.
type StaticVocabulary struct {
	Docs     [][]int
	PadToken int
}

func (s StaticVocabulary) EncodedDocs() [][]int {
	return s.Docs
}

func (s StaticVocabulary) PadTokenID() int {
	return s.PadToken
}

// copyDocs deep-copies an encoded corpus so the loader never aliases caller-owned slices.
func copyDocs(docs [][]int) [][]int {
	result := make([][]int, len(docs))
	for i, doc := range docs {
		result[i] = slices.Clone(doc)
	}
	return result
}
