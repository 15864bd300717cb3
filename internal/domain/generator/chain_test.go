package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChainBuildsTransitions(t *testing.T) {
	chain := NewChain("The quick brown fox jumps over the lazy dog.")

	require.Equal(t, 7, chain.Len())

	successors, ok := chain.Successors(Bigram{First: "the", Second: "quick"})
	require.True(t, ok)
	require.Equal(t, []string{"brown"}, successors)

	successors, ok = chain.Successors(Bigram{First: "over", Second: "the"})
	require.True(t, ok)
	require.Equal(t, []string{"lazy"}, successors)

	_, ok = chain.Successors(Bigram{First: "lazy", Second: "dog"})
	require.False(t, ok)
}

func TestNewChainKeepsDuplicateSuccessorsInOrder(t *testing.T) {
	chain := NewChain("a b c a b d")

	successors, ok := chain.Successors(Bigram{First: "a", Second: "b"})
	require.True(t, ok)
	require.Equal(t, []string{"c", "d"}, successors)
}

func TestNewChainEveryKeyHasSuccessors(t *testing.T) {
	chain := NewChain("alice was beginning to get very tired of sitting by her sister")
	require.Positive(t, chain.Len())
	for _, key := range chain.keys {
		successors, ok := chain.Successors(key)
		require.True(t, ok)
		require.NotEmpty(t, successors)
	}
}

func TestNewChainTooShortCorpus(t *testing.T) {
	require.Zero(t, NewChain("one two").Len())
	require.Zero(t, NewChain("").Len())
}

func TestKeysWithFirst(t *testing.T) {
	chain := NewChain("the quick brown fox jumps over the lazy dog")

	keys := chain.KeysWithFirst("the")
	require.Equal(t, []Bigram{
		{First: "the", Second: "quick"},
		{First: "the", Second: "lazy"},
	}, keys)

	require.Empty(t, chain.KeysWithFirst("zebra"))
}

func TestExtendKnownKeyReturnsOneSuccessor(t *testing.T) {
	chain := NewChain("a b c a b d")
	rng := rand.New(rand.NewSource(7))

	step := chain.Extend(rng, Bigram{First: "a", Second: "b"})
	require.False(t, step.Restarted)
	require.Len(t, step.Words, 1)
	require.Contains(t, []string{"c", "d"}, step.Words[0])
}

func TestExtendDeadEndRestartsWithTableKey(t *testing.T) {
	chain := NewChain("the quick brown fox jumps over the lazy dog")
	rng := rand.New(rand.NewSource(7))

	step := chain.Extend(rng, Bigram{First: "lazy", Second: "dog"})
	require.True(t, step.Restarted)
	require.Len(t, step.Words, 2)
	_, ok := chain.Successors(Bigram{First: step.Words[0], Second: step.Words[1]})
	require.True(t, ok)
}

func TestRandomKeyDeterministicUnderFixedSeed(t *testing.T) {
	chain := NewChain("the quick brown fox jumps over the lazy dog")

	first := chain.RandomKey(rand.New(rand.NewSource(42)))
	second := chain.RandomKey(rand.New(rand.NewSource(42)))
	require.Equal(t, first, second)
}
