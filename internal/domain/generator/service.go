package generator

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/kezhang/textsmith/pkg/errors"
	"github.com/kezhang/textsmith/pkg/metrics"
	"github.com/kezhang/textsmith/pkg/textutil"
)

// Service exposes Markov chain text generation.
type Service interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg    Config
	chain  *Chain
	logger *slog.Logger
}

// NewService is a wire provider for the generator domain.
func NewService(cfg Config, chain *Chain, logger *slog.Logger) Service {
	return &service{cfg: cfg, chain: chain, logger: logger.With("component", "generator.service")}
}

func (s *service) Generate(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	if s.chain.Len() == 0 {
		return Response{}, apperrors.Wrap("model_not_trained", "transition table has no learned bigrams", nil)
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = s.cfg.DefaultMaxWords
	}

	rng := s.newRNG()
	promptWords := textutil.Words(req.Prompt)
	words := s.seedWords(rng, promptWords)

	restarts := 0
	for len(words) < maxLength {
		step := s.chain.Extend(rng, Bigram{First: words[len(words)-2], Second: words[len(words)-1]})
		words = append(words, step.Words...)
		if step.Restarted {
			restarts++
		}
	}

	if first, ok := firstRune(req.Prompt); ok && unicode.IsUpper(first) {
		words[0] = capitalize(words[0])
	}

	s.logger.Debug("generation complete", "promptWords", len(promptWords), "words", len(words), "restarts", restarts)

	return Response{
		GeneratedText: strings.Join(words, " "),
		Stats:         metrics.TextStats{WordCount: len(words)},
		DurationMs:    time.Since(start).Milliseconds(),
	}, nil
}

// seedWords picks the starting state: the whole prompt when its trailing
// bigram is known, a completed pair for a single-word prompt, and a random
// key otherwise. An unknown seed discards the prompt entirely.
func (s *service) seedWords(rng *rand.Rand, promptWords []string) []string {
	switch {
	case len(promptWords) >= 2:
		seed := Bigram{First: promptWords[len(promptWords)-2], Second: promptWords[len(promptWords)-1]}
		if _, ok := s.chain.Successors(seed); ok {
			return append([]string(nil), promptWords...)
		}
	case len(promptWords) == 1:
		if candidates := s.chain.KeysWithFirst(promptWords[0]); len(candidates) > 0 {
			chosen := candidates[rng.Intn(len(candidates))]
			return []string{promptWords[0], chosen.Second}
		}
	}
	key := s.chain.RandomKey(rng)
	return []string{key.First, key.Second}
}

func (s *service) newRNG() *rand.Rand {
	if s.cfg.Seed != 0 {
		return rand.New(rand.NewSource(s.cfg.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func firstRune(text string) (rune, bool) {
	if text == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return r, r != utf8.RuneError
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
