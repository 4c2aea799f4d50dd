package packedidx

// TailTrie rewrites the trie so that every unary suffix chain down to a
// leaf is replaced by a single edge into a shared tail pool. A node is
// kept iff it is the root or more than one accepting path runs through
// it; the target of
// an edge into a discarded chain is the tail-tagged pool offset where
// the chain's bytes (edge label included) were appended.
type TailTrie struct {
	tailStr []byte
	maps    *nodeMaps
}

func NewTailTrie(base *BaseTrie) *TailTrie {
	data := base.toAdjacency()
	pathsToLeaf := make([]int32, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		if len(data[i]) == 0 {
			pathsToLeaf[i] = 1
		}
		for _, e := range data[i] {
			pathsToLeaf[i] += pathsToLeaf[e.to]
		}
	}

	t := &TailTrie{}
	mapping := make([]int32, len(data))
	for i := range mapping {
		mapping[i] = NotFound
	}
	type tailEdge struct {
		ch   byte
		tail bool
		to   int32
	}
	var newEdges [][]tailEdge
	for i := range data {
		// The root stays even in a single-string dictionary, where no
		// node sees more than one accepting path.
		if pathsToLeaf[i] <= 1 && i != 0 {
			continue
		}
		mapping[i] = int32(len(newEdges))
		edges := make([]tailEdge, 0, len(data[i]))
		for _, e := range data[i] {
			if pathsToLeaf[e.to] > 1 {
				edges = append(edges, tailEdge{e.ch, false, e.to})
				continue
			}
			edges = append(edges, tailEdge{e.ch, true, int32(len(t.tailStr))})
			t.tailStr = append(t.tailStr, e.ch)
			for cur := e.to; len(data[cur]) != 0; cur = data[cur][0].to {
				t.tailStr = append(t.tailStr, data[cur][0].ch)
			}
		}
		newEdges = append(newEdges, edges)
	}

	newData := make(adjacency, len(newEdges))
	for i, edges := range newEdges {
		for _, e := range edges {
			to := e.to
			if e.tail {
				to = tagTail(to)
			} else {
				to = mapping[to]
			}
			newData[i] = append(newData[i], edge{e.ch, to})
		}
	}
	t.maps = nodeMapsFromAdjacency(newData)
	return t
}

// Search walks the kept nodes. A tail-tagged target hands the rest of
// the input to the pool: accept iff it matches the pool bytes starting
// at the offset exactly.
func (t *TailTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		node = t.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
		if isTail(node) {
			ofs := tailOffset(node)
			rest := int32(len(line)) - i
			return lcp(t.tailStr, ofs, line, i, rest) == rest
		}
	}
	// Kept nodes are never accepting; only a tail edge can accept.
	return false
}

func (t *TailTrie) toAdjacency() adjacency {
	return t.maps.toAdjacency()
}

// TailDoubleArrayTrie re-encodes the kept nodes' edges in the double
// array without reindexing: targets stay logical kept-node ids (or
// tail-tagged offsets), translated to bases through the side table.
type TailDoubleArrayTrie struct {
	tailStr []byte
	next    []int32
	maps    *doubleArrayMaps
}

func NewTailDoubleArrayTrie(base *TailTrie) *TailDoubleArrayTrie {
	maps, bases := constructDoubleArrayWithoutReindexing(base.toAdjacency())
	return &TailDoubleArrayTrie{tailStr: base.tailStr, next: bases, maps: maps}
}

func (t *TailDoubleArrayTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		node = t.maps.search(t.next[node], line[i])
		if node == NotFound {
			return false
		}
		if isTail(node) {
			ofs := tailOffset(node)
			rest := int32(len(line)) - i
			return lcp(t.tailStr, ofs, line, i, rest) == rest
		}
	}
	return false
}

func (t *TailDoubleArrayTrie) MemoryUsage() int {
	return 4 + len(t.tailStr) + 4*len(t.next) + 5*int(t.maps.size())
}

// TailBinarySearchTrie re-encodes the kept nodes' edges in the sorted
// array. Tail-tagged targets survive the re-encoding unchanged.
type TailBinarySearchTrie struct {
	tailStr []byte
	maps    *binarySearchMaps
}

func NewTailBinarySearchTrie(base *TailTrie) *TailBinarySearchTrie {
	return &TailBinarySearchTrie{
		tailStr: base.tailStr,
		maps:    constructBinarySearchMaps(base.toAdjacency()),
	}
}

func (t *TailBinarySearchTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		node = t.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
		if isTail(node) {
			ofs := tailOffset(node)
			rest := int32(len(line)) - i
			return lcp(t.tailStr, ofs, line, i, rest) == rest
		}
	}
	return false
}

func (t *TailBinarySearchTrie) MemoryUsage() int {
	return 4 + len(t.tailStr) + 6*int(t.maps.size())
}
