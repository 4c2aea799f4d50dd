package packedidx

// BaseTrie is the mutable reference trie. It is the only index that
// supports insertion; every other variant is derived from it. Node 0 is
// the root, node ids are assigned in insertion order, and a node is
// accepting iff it has no outgoing edges (the last byte consumed was
// the EOW sentinel).
type BaseTrie struct {
	nodeCount int32
	maps      *nodeMaps
}

// NewBaseTrie builds a trie over the given dictionary. Every line must
// be EOW-terminated and the lines pairwise distinct.
func NewBaseTrie(lines [][]byte) *BaseTrie {
	t := &BaseTrie{nodeCount: 1, maps: newNodeMaps(1)}
	for _, line := range lines {
		t.Insert(line)
	}
	return t
}

// Insert adds one EOW-terminated string, creating nodes as needed.
func (t *BaseTrie) Insert(line []byte) {
	node := int32(0)
	for _, ch := range line {
		child := t.maps.search(node, ch)
		if child == NotFound {
			child = t.nodeCount
			t.nodeCount++
			t.maps.extend(int(t.nodeCount))
			t.maps.insert(node, ch, child)
		}
		node = child
	}
}

// Search walks the trie and accepts iff it ends on a leaf.
func (t *BaseTrie) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = t.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return t.maps.outdegree(node) == 0
}

// NumNodes returns the number of nodes, including the root.
func (t *BaseTrie) NumNodes() int {
	return int(t.nodeCount)
}

// NumEdges returns the number of edges.
func (t *BaseTrie) NumEdges() int {
	n := 0
	for i := int32(0); i < t.nodeCount; i++ {
		n += t.maps.outdegree(i)
	}
	return n
}

func (t *BaseTrie) toAdjacency() adjacency {
	return t.maps.toAdjacency()
}
