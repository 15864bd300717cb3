package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// The default corpus ships inside the binary so the generator is trained the
// moment the process starts. The text is drawn from the opening chapters of
// Alice's Adventures in Wonderland (public domain).
//
//go:embed alice.txt
var defaultCorpus string

// Default returns the built-in training corpus.
func Default() string {
	return defaultCorpus
}

// Load returns the corpus at path, or the built-in corpus when path is empty.
func Load(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return defaultCorpus, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("corpus file %s is empty", path)
	}
	return string(data), nil
}
