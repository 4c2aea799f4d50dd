package packedidx

import (
	"fmt"

	"github.com/tidwall/btree"
)

// nodeMaps is the mutable child-map backend: one map per node, ordered
// by edge label. It backs the reference trie and every intermediate
// form before re-encoding into a static backend.
type nodeMaps struct {
	maps []btree.Map[byte, int32]
}

func newNodeMaps(size int) *nodeMaps {
	return &nodeMaps{maps: make([]btree.Map[byte, int32], size)}
}

func (m *nodeMaps) extend(size int) {
	for len(m.maps) < size {
		m.maps = append(m.maps, btree.Map[byte, int32]{})
	}
}

func (m *nodeMaps) size() int32 {
	return int32(len(m.maps))
}

// insert adds the edge (node, ch) -> to. Inserting a duplicate label is
// a programmer error and panics.
func (m *nodeMaps) insert(node int32, ch byte, to int32) {
	if _, ok := m.maps[node].Get(ch); ok {
		panic(fmt.Errorf("packedidx: duplicate edge %d on node %d", ch, node))
	}
	m.maps[node].Set(ch, to)
}

func (m *nodeMaps) search(node int32, ch byte) int32 {
	if to, ok := m.maps[node].Get(ch); ok {
		return to
	}
	return NotFound
}

func (m *nodeMaps) outdegree(node int32) int {
	return m.maps[node].Len()
}

// toAdjacency exports the edges of every node, ascending by label.
func (m *nodeMaps) toAdjacency() adjacency {
	data := make(adjacency, len(m.maps))
	for i := range m.maps {
		edges := make([]edge, 0, m.maps[i].Len())
		m.maps[i].Scan(func(ch byte, to int32) bool {
			edges = append(edges, edge{ch, to})
			return true
		})
		data[i] = edges
	}
	return data
}

// nodeMapsFromAdjacency installs every edge of data into a fresh backend.
func nodeMapsFromAdjacency(data adjacency) *nodeMaps {
	m := newNodeMaps(len(data))
	for i, edges := range data {
		for _, e := range edges {
			m.insert(int32(i), e.ch, e.to)
		}
	}
	return m
}
