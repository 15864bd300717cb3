package metrics

// TextStats captures the size of a processed text payload.
type TextStats struct {
	WordCount     int `json:"wordCount"`
	SentenceCount int `json:"sentenceCount,omitempty"`
}

// IsZero reports whether stats are absent.
func (s TextStats) IsZero() bool {
	return s.WordCount == 0 && s.SentenceCount == 0
}
