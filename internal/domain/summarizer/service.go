package summarizer

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/kezhang/textsmith/pkg/metrics"
	"github.com/kezhang/textsmith/pkg/textutil"
)

// Service exposes extractive summarization.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg       Config
	stopwords map[string]struct{}
	store     Store
	logger    *slog.Logger
}

// NewService is a wire provider for the summarizer domain. The store may be
// nil when caching is not wanted.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		stopwords: defaultStopwords(),
		store:     store,
		logger:    logger.With("component", "summarizer.service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	maxSentences := req.MaxSentences
	if maxSentences <= 0 {
		maxSentences = s.cfg.DefaultMaxSentences
	}

	sentences := textutil.Sentences(req.Text)
	if len(sentences) <= maxSentences {
		// Too short to condense; the caller gets the input back verbatim.
		return Response{
			Summary:    req.Text,
			Stats:      statsFor(req.Text, len(sentences)),
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}

	key := cacheKey(req.Text, maxSentences)
	if cached, ok := s.lookup(ctx, key); ok {
		return Response{
			Summary:    cached,
			Cached:     true,
			Stats:      statsFor(cached, maxSentences),
			DurationMs: time.Since(start).Milliseconds(),
		}, nil
	}

	summary := s.extract(sentences, maxSentences)
	s.persist(ctx, key, summary)

	return Response{
		Summary:    summary,
		Stats:      statsFor(summary, maxSentences),
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// extract selects the maxSentences highest scoring sentences and rejoins
// them in original order. A sentence scores the sum of the document-wide
// frequencies of its non-stopword words.
func (s *service) extract(sentences []string, maxSentences int) string {
	freq := make(map[string]int)
	for _, sentence := range sentences {
		for _, word := range textutil.Words(sentence) {
			if _, stop := s.stopwords[word]; !stop {
				freq[word]++
			}
		}
	}

	type scored struct {
		score int
		index int
		text  string
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		score := 0
		for _, word := range textutil.Words(sentence) {
			if _, stop := s.stopwords[word]; !stop {
				score += freq[word]
			}
		}
		ranked[i] = scored{score: score, index: i, text: sentence}
	}

	// Descending score, ties broken by earliest position.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	top := ranked[:maxSentences]
	sort.Slice(top, func(i, j int) bool { return top[i].index < top[j].index })

	parts := make([]string, len(top))
	for i, entry := range top {
		parts[i] = entry.text
	}
	return strings.Join(parts, " ")
}

func (s *service) lookup(ctx context.Context, key string) (string, bool) {
	if s.store == nil {
		return "", false
	}
	summary, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("summary cache lookup failed", "error", err)
		return "", false
	}
	return summary, ok
}

func (s *service) persist(ctx context.Context, key, summary string) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, key, summary, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("summary cache save failed", "error", err)
	}
}

// cacheKey hashes the raw text so that inputs differing only in whitespace
// get distinct entries; sentences are returned verbatim, so whitespace
// variants must never share a summary.
func cacheKey(text string, maxSentences int) string {
	hasher := fnv.New64a()
	hasher.Write([]byte(text))
	return fmt.Sprintf("%x:%d", hasher.Sum64(), maxSentences)
}

func statsFor(text string, sentenceCount int) metrics.TextStats {
	return metrics.TextStats{
		WordCount:     len(textutil.Words(text)),
		SentenceCount: sentenceCount,
	}
}
