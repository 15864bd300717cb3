package generator

import (
	"math/rand"

	"github.com/kezhang/textsmith/pkg/textutil"
)

// Bigram is an ordered pair of two consecutive words used as a lookup key.
type Bigram struct {
	First  string
	Second string
}

// Chain holds the bigram transition table learned from a training corpus.
// It is built once and never mutated afterwards, so lookups are safe from
// any number of goroutines.
type Chain struct {
	transitions map[Bigram][]string
	keys        []Bigram
}

// NewChain tokenizes the corpus and records, for every bigram, the words
// observed to follow it. Successor lists keep insertion order and duplicates
// so sampling reflects corpus frequency.
func NewChain(corpusText string) *Chain {
	words := textutil.Words(corpusText)
	c := &Chain{transitions: make(map[Bigram][]string)}
	for i := 0; i+2 < len(words); i++ {
		key := Bigram{First: words[i], Second: words[i+1]}
		if _, seen := c.transitions[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.transitions[key] = append(c.transitions[key], words[i+2])
	}
	return c
}

// Len reports the number of learned bigram keys.
func (c *Chain) Len() int {
	return len(c.keys)
}

// Successors returns the words observed after key, in corpus order.
func (c *Chain) Successors(key Bigram) ([]string, bool) {
	successors, ok := c.transitions[key]
	return successors, ok
}

// RandomKey picks a table key uniformly at random. The caller must ensure
// the chain is non-empty.
func (c *Chain) RandomKey(rng *rand.Rand) Bigram {
	return c.keys[rng.Intn(len(c.keys))]
}

// KeysWithFirst returns every key whose first word matches, in the stable
// order keys were learned.
func (c *Chain) KeysWithFirst(word string) []Bigram {
	var out []Bigram
	for _, key := range c.keys {
		if key.First == word {
			out = append(out, key)
		}
	}
	return out
}

// Step is the outcome of one transition of the generation loop: either a
// single successor word, or a whole random bigram after a dead end.
type Step struct {
	Words     []string
	Restarted bool
}

// Extend advances the chain from key. On a known bigram it samples one
// successor uniformly; on a dead end it restarts from a random key and
// returns both of its words.
func (c *Chain) Extend(rng *rand.Rand, key Bigram) Step {
	if successors, ok := c.transitions[key]; ok {
		return Step{Words: []string{successors[rng.Intn(len(successors))]}}
	}
	next := c.RandomKey(rng)
	return Step{Words: []string{next.First, next.Second}, Restarted: true}
}
