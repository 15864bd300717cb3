package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// Unicode letter/digit classes rather than \w, which is ASCII-only in Go
// regexp; "café" must stay one token.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Words tokenizes text into lowercase word tokens. A word is a run of
// letters, digits or underscores, so punctuation is dropped and
// contractions split at the apostrophe.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Sentences splits text into sentences on boundaries where a terminal
// punctuation mark is immediately followed by whitespace. Fragments keep
// their original text verbatim, including the trailing punctuation.
func Sentences(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if fragment := string(runes[start : i+1]); fragment != "" {
			out = append(out, fragment)
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
