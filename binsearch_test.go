package packedidx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomAdjacency(rng *rand.Rand, nodes, maxDegree int) adjacency {
	data := make(adjacency, nodes)
	for i := range data {
		degree := rng.Intn(maxDegree + 1)
		seen := map[byte]bool{}
		for len(seen) < degree {
			ch := byte(rng.Intn(255) + 1) // labels are never NullChar
			if !seen[ch] {
				seen[ch] = true
				data[i] = append(data[i], edge{ch, int32(rng.Intn(nodes))})
			}
		}
	}
	return data
}

func TestBinarySearchMapsAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 20; iter++ {
		data := randomAdjacency(rng, rng.Intn(50)+1, 12)
		maps := constructBinarySearchMaps(data)

		for i, edges := range data {
			want := map[byte]int32{}
			for _, e := range edges {
				want[e.ch] = e.to
			}
			for ch := 1; ch < 256; ch++ {
				to, ok := want[byte(ch)]
				if !ok {
					to = NotFound
				}
				require.Equal(t, to, maps.search(int32(i), byte(ch)),
					"node %d label %d", i, ch)
			}
		}
	}
}

func TestDelimiterVectorShape(t *testing.T) {
	data := adjacency{
		{{'a', 1}, {'b', 2}},
		{},
		{{EOW, 1}},
	}
	maps := constructBinarySearchMaps(data)

	// one set bit per node boundary plus the trailing one
	require.Equal(t, int32(len(data)+1), maps.bv.Ones())
	require.Equal(t, 3+len(data)+1, maps.bv.Len())

	// edges between consecutive boundaries ascend by label
	for i := int32(0); i < int32(len(data)); i++ {
		l := maps.bv.Select1(i + 1)
		l -= maps.bv.Rank1(l)
		r := maps.bv.Select1(i + 2)
		r -= maps.bv.Rank1(r)
		for j := l + 1; j < r; j++ {
			assert.Less(t, maps.elms[j-1].ch, maps.elms[j].ch)
		}
	}
}

func TestBinarySearchUnsortedInputIsSorted(t *testing.T) {
	// the construction sorts each node's run itself
	data := adjacency{{{'z', 9}, {'a', 7}, {'m', 8}}}
	maps := constructBinarySearchMaps(data)
	assert.Equal(t, int32(7), maps.search(0, 'a'))
	assert.Equal(t, int32(8), maps.search(0, 'm'))
	assert.Equal(t, int32(9), maps.search(0, 'z'))
	assert.Equal(t, byte('a'), maps.elms[0].ch)
}

func TestBinarySearchWideNode(t *testing.T) {
	// degree far above the linear-scan border exercises the binary phase
	var edges []edge
	for ch := 2; ch < 200; ch += 3 {
		edges = append(edges, edge{byte(ch), int32(ch * 2)})
	}
	maps := constructBinarySearchMaps(adjacency{edges})
	for ch := 1; ch < 210; ch++ {
		want := NotFound
		if ch >= 2 && ch < 200 && (ch-2)%3 == 0 {
			want = int32(ch * 2)
		}
		require.Equal(t, want, maps.search(0, byte(ch)), "label %d", ch)
	}
}
