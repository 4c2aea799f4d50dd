package packedidx

import "errors"

// PathDecomposedADFA applies heavy-path decomposition to the minimal
// automaton. A DAG needs two passes: the forward pass lets every node
// nominate the out-edge whose target has the most paths to the sink,
// and the backward pass resolves nodes nominated by several
// predecessors, keeping only the predecessor with the most paths from
// the root. The surviving heavy edges form vertex-disjoint paths, which
// are then extracted exactly as in the trie case. The source starts the
// first path and so keeps id 0, while the sink ends a path whose
// position is not fixed; both are stored as remapped ids.
type PathDecomposedADFA struct {
	root, sink int32
	heavyStr   []byte
	maps       *nodeMaps
}

func NewPathDecomposedADFA(base *BaseADFA) *PathDecomposedADFA {
	data := base.toAdjacency()
	n := len(data)
	heavy := make([][]bool, n)
	for i := range data {
		heavy[i] = make([]bool, len(data[i]))
		for j := range heavy[i] {
			heavy[i][j] = true
		}
	}

	// Forward pass: per-node nomination by paths to the sink.
	pathsToSink := make([]int32, n)
	pathsToSink[n-1] = 1
	for i := n - 1; i >= 0; i-- {
		for _, e := range data[i] {
			pathsToSink[i] += pathsToSink[e.to]
		}
	}
	for i := range data {
		best, bestPaths := 0, int32(0)
		for j, e := range data[i] {
			if pathsToSink[e.to] > bestPaths {
				best, bestPaths = j, pathsToSink[e.to]
			}
		}
		for j := range data[i] {
			if j != best {
				heavy[i][j] = false
			}
		}
	}

	// Backward pass: at most one predecessor may keep a node as its
	// heavy target; the one with the most paths from the root wins.
	pathsFromRoot := make([]int32, n)
	pathsFromRoot[0] = 1
	for i := 0; i < n; i++ {
		for _, e := range data[i] {
			pathsFromRoot[e.to] += pathsFromRoot[i]
		}
	}
	type claim struct{ node, edge int32 }
	claims := make([]claim, n)
	for i := range claims {
		claims[i] = claim{NotFound, NotFound}
	}
	for i := n - 1; i >= 0; i-- {
		for j, e := range data[i] {
			if !heavy[i][j] {
				continue
			}
			switch {
			case claims[e.to].node == NotFound:
				claims[e.to] = claim{int32(i), int32(j)}
			case pathsFromRoot[i] > pathsFromRoot[claims[e.to].node]:
				prev := claims[e.to]
				heavy[prev.node][prev.edge] = false
				claims[e.to] = claim{int32(i), int32(j)}
			default:
				heavy[i][j] = false
			}
		}
	}

	// Extract the heavy paths; the visit order is the new numbering.
	t := &PathDecomposedADFA{heavyStr: make([]byte, 0, n)}
	heavyPath := make([]int32, 0, n)
	onPath := make([]bool, n)
	for i := 0; i < n; i++ {
		if onPath[i] {
			continue
		}
		onPath[i] = true
		heavyPath = append(heavyPath, int32(i))
		cur := int32(i)
		for {
			next := NotFound
			for j, e := range data[cur] {
				if heavy[cur][j] {
					if onPath[e.to] {
						panic(errors.New("packedidx: heavy paths are not vertex-disjoint"))
					}
					heavyPath = append(heavyPath, e.to)
					onPath[e.to] = true
					t.heavyStr = append(t.heavyStr, e.ch)
					next = e.to
					break
				}
			}
			if next == NotFound {
				break
			}
			cur = next
		}
		t.heavyStr = append(t.heavyStr, NullChar)
	}
	if len(heavyPath) != n {
		panic(errors.New("packedidx: heavy paths do not cover every node"))
	}

	inv := make([]int32, n)
	for i, old := range heavyPath {
		inv[old] = int32(i)
	}
	lightInv := make(adjacency, n)
	for i := range data {
		for j, e := range data[i] {
			if !heavy[i][j] {
				lightInv[inv[i]] = append(lightInv[inv[i]], edge{e.ch, inv[e.to]})
			}
		}
	}
	t.maps = nodeMapsFromAdjacency(lightInv)
	t.root = inv[0]
	t.sink = inv[n-1]
	return t
}

// Search walks from the remapped source, scanning heavy-path labels and
// branching on light edges, and accepts iff it ends on the remapped
// sink. Inputs end in EOW and never contain NullChar, so the path
// separators cannot be consumed as labels.
func (a *PathDecomposedADFA) Search(line []byte) bool {
	node := a.root
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(a.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) {
			break
		}
		node = a.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
	}
	return node == a.sink
}

func (a *PathDecomposedADFA) toAdjacency() adjacency {
	return a.maps.toAdjacency()
}

// PathDecomposedDoubleArrayADFA re-encodes the light edges in the
// double array without reindexing, keeping the heavy-path numbering.
type PathDecomposedDoubleArrayADFA struct {
	root, sink int32
	heavyStr   []byte
	next       []int32
	maps       *doubleArrayMaps
}

func NewPathDecomposedDoubleArrayADFA(base *PathDecomposedADFA) *PathDecomposedDoubleArrayADFA {
	maps, bases := constructDoubleArrayWithoutReindexing(base.toAdjacency())
	return &PathDecomposedDoubleArrayADFA{
		root:     base.root,
		sink:     base.sink,
		heavyStr: base.heavyStr,
		next:     bases,
		maps:     maps,
	}
}

func (a *PathDecomposedDoubleArrayADFA) Search(line []byte) bool {
	node := a.root
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(a.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) {
			break
		}
		node = a.maps.search(a.next[node], line[i])
		if node == NotFound {
			return false
		}
	}
	return node == a.sink
}

func (a *PathDecomposedDoubleArrayADFA) MemoryUsage() int {
	return 8 + len(a.heavyStr) + 4*len(a.next) + 5*int(a.maps.size())
}

// PathDecomposedBinarySearchADFA re-encodes the light edges in the
// sorted array, keeping the heavy-path numbering.
type PathDecomposedBinarySearchADFA struct {
	root, sink int32
	heavyStr   []byte
	maps       *binarySearchMaps
}

func NewPathDecomposedBinarySearchADFA(base *PathDecomposedADFA) *PathDecomposedBinarySearchADFA {
	return &PathDecomposedBinarySearchADFA{
		root:     base.root,
		sink:     base.sink,
		heavyStr: base.heavyStr,
		maps:     constructBinarySearchMaps(base.toAdjacency()),
	}
}

func (a *PathDecomposedBinarySearchADFA) Search(line []byte) bool {
	node := a.root
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(a.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) || node == a.sink {
			break
		}
		node = a.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
	}
	return node == a.sink
}

func (a *PathDecomposedBinarySearchADFA) MemoryUsage() int {
	return 8 + len(a.heavyStr) + 6*int(a.maps.size())
}
