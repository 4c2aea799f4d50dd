package packedidx_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/packedidx"
)

func eow(s string) []byte {
	return append([]byte(s), packedidx.EOW)
}

func eowAll(ss ...string) [][]byte {
	lines := make([][]byte, len(ss))
	for i, s := range ss {
		lines[i] = eow(s)
	}
	return lines
}

// buildAll constructs every variant from one dictionary, in the same
// derivation order the benchmark driver uses.
func buildAll(lines [][]byte) map[string]packedidx.Index {
	trie := packedidx.NewBaseTrie(lines)
	tail := packedidx.NewTailTrie(trie)
	pd := packedidx.NewPathDecomposedTrie(trie)
	adfa := packedidx.NewBaseADFA(trie)
	pdADFA := packedidx.NewPathDecomposedADFA(adfa)
	return map[string]packedidx.Index{
		"BaseTrie":                       trie,
		"DoubleArrayTrie":                packedidx.NewDoubleArrayTrie(trie),
		"BinarySearchTrie":               packedidx.NewBinarySearchTrie(trie),
		"TailTrie":                       tail,
		"TailDoubleArrayTrie":            packedidx.NewTailDoubleArrayTrie(tail),
		"TailBinarySearchTrie":           packedidx.NewTailBinarySearchTrie(tail),
		"PathDecomposedTrie":             pd,
		"PathDecomposedDoubleArrayTrie":  packedidx.NewPathDecomposedDoubleArrayTrie(pd),
		"PathDecomposedBinarySearchTrie": packedidx.NewPathDecomposedBinarySearchTrie(pd),
		"BaseADFA":                       adfa,
		"DoubleArrayADFA":                packedidx.NewDoubleArrayADFA(adfa),
		"BinarySearchADFA":               packedidx.NewBinarySearchADFA(adfa),
		"PathDecomposedADFA":             pdADFA,
		"PathDecomposedDoubleArrayADFA":  packedidx.NewPathDecomposedDoubleArrayADFA(pdADFA),
		"PathDecomposedBinarySearchADFA": packedidx.NewPathDecomposedBinarySearchADFA(pdADFA),
	}
}

func assertMembership(t *testing.T, indices map[string]packedidx.Index, accepted, rejected []string) {
	t.Helper()
	for name, idx := range indices {
		for _, w := range accepted {
			assert.True(t, idx.Search(eow(w)), "%s rejects %q", name, w)
		}
		for _, w := range rejected {
			assert.False(t, idx.Search(eow(w)), "%s accepts %q", name, w)
		}
	}
}

func TestChainDictionary(t *testing.T) {
	indices := buildAll(eowAll("a", "ab", "abc"))
	assertMembership(t, indices,
		[]string{"a", "ab", "abc"},
		[]string{"", "b", "abcd"})
}

func TestThreeWayBranch(t *testing.T) {
	indices := buildAll(eowAll("abc", "abd", "abe"))
	assertMembership(t, indices,
		[]string{"abc", "abd", "abe"},
		[]string{"", "ab", "abf", "abcd"})
}

func TestSharedPrefixTails(t *testing.T) {
	indices := buildAll(eowAll("hello", "help", "helm"))
	assertMembership(t, indices,
		[]string{"hello", "help", "helm"},
		[]string{"", "hel", "hell", "helps", "hellos"})
}

func TestSingleWordDictionary(t *testing.T) {
	indices := buildAll(eowAll("x"))
	assertMembership(t, indices, []string{"x"}, []string{"", "y", "xx"})
}

func TestDisjointPaths(t *testing.T) {
	indices := buildAll(eowAll("ab", "ba"))
	assertMembership(t, indices,
		[]string{"ab", "ba"},
		[]string{"", "a", "b", "aa", "bb", "aba"})
}

func TestEmptyWordBoundary(t *testing.T) {
	indices := buildAll(eowAll("", "a"))
	assertMembership(t, indices, []string{"", "a"}, []string{"b", "aa"})

	// a query without the sentinel is never a member
	for name, idx := range indices {
		assert.False(t, idx.Search([]byte{}), "%s accepts the unterminated empty query", name)
	}
}

func randomWords(rng *rand.Rand, n int) map[string]bool {
	words := make(map[string]bool, n)
	for len(words) < n {
		length := rng.Intn(9)
		word := make([]byte, length)
		for i := range word {
			word[i] = byte('a' + rng.Intn(5))
		}
		words[string(word)] = true
	}
	return words
}

func TestAllVariantsAgreeOnRandomDictionaries(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 10; round++ {
		dict := randomWords(rng, 60+rng.Intn(120))
		var lines [][]byte
		for w := range dict {
			lines = append(lines, eow(w))
		}
		indices := buildAll(lines)

		queries := randomWords(rng, 300)
		for w := range dict {
			queries[w] = true
		}
		for q := range queries {
			want := dict[q]
			for name, idx := range indices {
				require.Equal(t, want, idx.Search(eow(q)),
					"round %d: %s disagrees on %q", round, name, q)
			}
		}
	}
}

func TestMemoryAccounting(t *testing.T) {
	indices := buildAll(eowAll("hello", "help", "helm", "held", "hero"))
	reporters := 0
	for name, idx := range indices {
		if r, ok := idx.(packedidx.MemoryReporter); ok {
			reporters++
			assert.Positive(t, r.MemoryUsage(), "%s reports no memory", name)
		}
	}
	// the ten frozen re-encodings account their arrays; the mutable and
	// intermediate forms do not
	assert.Equal(t, 10, reporters)
}

func ExampleBaseTrie() {
	lines := [][]byte{
		append([]byte("cat"), packedidx.EOW),
		append([]byte("car"), packedidx.EOW),
	}
	trie := packedidx.NewBaseTrie(lines)
	adfa := packedidx.NewBaseADFA(trie)
	fmt.Println(adfa.Search(append([]byte("car"), packedidx.EOW)))
	fmt.Println(adfa.Search(append([]byte("ca"), packedidx.EOW)))
	// Output:
	// true
	// false
}
