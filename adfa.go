package packedidx

import (
	"errors"
	"strconv"
	"strings"
)

// BaseADFA is the minimal acyclic deterministic finite automaton
// recognizing the same dictionary as the trie it is built from. Node 0
// is the unique source, the last node the unique sink, and every edge
// (u, v) satisfies u < v.
type BaseADFA struct {
	maps *nodeMaps
}

// NewBaseADFA minimizes the trie by bottom-up equivalence hashing: two
// nodes are merged iff their outgoing edge sets, with targets rewritten
// to class representatives, are identical. Scanning nodes in reverse
// index order guarantees every child is classified before its parent.
func NewBaseADFA(base *BaseTrie) *BaseADFA {
	data := base.toAdjacency()
	ids := make([]int32, len(data))
	idOf := make(map[string]int32, len(data))
	classEdges := make([][]edge, 0, len(data))

	var sig strings.Builder
	for i := len(data) - 1; i >= 0; i-- {
		sig.Reset()
		children := make([]edge, len(data[i]))
		for j, e := range data[i] {
			children[j] = edge{e.ch, ids[e.to]}
			sig.WriteByte(e.ch)
			sig.WriteString(strconv.Itoa(int(ids[e.to])))
			sig.WriteByte('_')
		}
		key := sig.String()
		id, ok := idOf[key]
		if !ok {
			id = int32(len(classEdges))
			idOf[key] = id
			classEdges = append(classEdges, children)
		}
		ids[i] = id
	}

	// The leaf class is discovered first and the root class last, so
	// flipping the ids makes the root 0 and the sink the final id, and
	// orients every edge toward a strictly larger id.
	last := int32(len(classEdges)) - 1
	maps := newNodeMaps(len(classEdges))
	for id, children := range classEdges {
		from := last - int32(id)
		for _, e := range children {
			to := last - e.to
			if from >= to {
				panic(errors.New("packedidx: ADFA edge violates topological order"))
			}
			maps.insert(from, e.ch, to)
		}
	}
	return &BaseADFA{maps: maps}
}

// Search walks from the source and accepts iff it ends on the sink.
func (a *BaseADFA) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = a.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return node == a.maps.size()-1
}

// NumNodes returns the number of states.
func (a *BaseADFA) NumNodes() int {
	return int(a.maps.size())
}

// NumEdges returns the number of transitions.
func (a *BaseADFA) NumEdges() int {
	n := 0
	for i := int32(0); i < a.maps.size(); i++ {
		n += a.maps.outdegree(i)
	}
	return n
}

func (a *BaseADFA) toAdjacency() adjacency {
	return a.maps.toAdjacency()
}
