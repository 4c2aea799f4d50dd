package packedidx

import "github.com/milden6/packedidx/internal/bitvec"

// PathDecomposedTrie renumbers the trie along its heavy paths: each
// node's heavy child (the one with the most accepting descendants,
// first-seen winning ties) becomes the physically next node, so a walk
// down a heavy path is a linear scan. heavyStr holds, at position i,
// the label of the heavy edge leaving node i, with a NullChar closing
// each path. All remaining edges are light and live in a child map
// keyed by the new ids.
type PathDecomposedTrie struct {
	isLeaf   *bitvec.Vector
	heavyStr []byte
	maps     *nodeMaps
}

func NewPathDecomposedTrie(base *BaseTrie) *PathDecomposedTrie {
	data := base.toAdjacency()
	t := &PathDecomposedTrie{heavyStr: make([]byte, 0, len(data))}

	lightEdges := make(adjacency, len(data))
	heavyEdges := make([]int32, len(data))
	pathsToLeaf := make([]int32, len(data))
	for i := range heavyEdges {
		heavyEdges[i] = NotFound
	}
	for i := len(data) - 1; i >= 0; i-- {
		if len(data[i]) == 0 {
			pathsToLeaf[i] = 1
		}
		for j, e := range data[i] {
			switch {
			case heavyEdges[i] == NotFound:
				heavyEdges[i] = int32(j)
			case pathsToLeaf[e.to] > pathsToLeaf[data[i][heavyEdges[i]].to]:
				lightEdges[i] = append(lightEdges[i], data[i][heavyEdges[i]])
				heavyEdges[i] = int32(j)
			default:
				lightEdges[i] = append(lightEdges[i], e)
			}
			pathsToLeaf[i] += pathsToLeaf[e.to]
		}
	}

	// Chase heavy children greedily from every node not yet on a path;
	// the visit order is the new numbering.
	heavyPath := make([]int32, 0, len(data))
	onPath := make([]bool, len(data))
	for i := range data {
		if onPath[i] {
			continue
		}
		cur := int32(i)
		for {
			heavyPath = append(heavyPath, cur)
			onPath[cur] = true
			if heavyEdges[cur] == NotFound {
				t.heavyStr = append(t.heavyStr, NullChar)
				break
			}
			e := data[cur][heavyEdges[cur]]
			t.heavyStr = append(t.heavyStr, e.ch)
			cur = e.to
		}
	}

	inv := make([]int32, len(data))
	for i, old := range heavyPath {
		inv[old] = int32(i)
	}
	t.isLeaf = bitvec.New(len(data))
	for i := range data {
		if len(data[i]) == 0 {
			t.isLeaf.Set(int(inv[i]))
		}
	}
	lightInv := make(adjacency, len(data))
	for i := range data {
		for _, e := range lightEdges[i] {
			lightInv[inv[i]] = append(lightInv[inv[i]], edge{e.ch, inv[e.to]})
		}
	}
	t.maps = nodeMapsFromAdjacency(lightInv)
	return t
}

// Search interleaves heavy-path scans with light-edge lookups: extend
// the match along heavyStr as far as it goes, then branch on the first
// unmatched byte.
func (t *PathDecomposedTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(t.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) {
			break
		}
		node = t.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
	}
	return t.isLeaf.Test(int(node))
}

func (t *PathDecomposedTrie) toAdjacency() adjacency {
	return t.maps.toAdjacency()
}

// PathDecomposedDoubleArrayTrie re-encodes the light edges in the
// double array without reindexing, keeping the heavy-path numbering.
type PathDecomposedDoubleArrayTrie struct {
	isLeaf   *bitvec.Vector
	heavyStr []byte
	next     []int32
	maps     *doubleArrayMaps
}

func NewPathDecomposedDoubleArrayTrie(base *PathDecomposedTrie) *PathDecomposedDoubleArrayTrie {
	maps, bases := constructDoubleArrayWithoutReindexing(base.toAdjacency())
	return &PathDecomposedDoubleArrayTrie{
		isLeaf:   base.isLeaf,
		heavyStr: base.heavyStr,
		next:     bases,
		maps:     maps,
	}
}

func (t *PathDecomposedDoubleArrayTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(t.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) {
			break
		}
		node = t.maps.search(t.next[node], line[i])
		if node == NotFound {
			return false
		}
	}
	return t.isLeaf.Test(int(node))
}

func (t *PathDecomposedDoubleArrayTrie) MemoryUsage() int {
	return 8 + len(t.heavyStr) + 4*len(t.next) + 5*int(t.maps.size())
}

// PathDecomposedBinarySearchTrie re-encodes the light edges in the
// sorted array, keeping the heavy-path numbering.
type PathDecomposedBinarySearchTrie struct {
	isLeaf   *bitvec.Vector
	heavyStr []byte
	maps     *binarySearchMaps
}

func NewPathDecomposedBinarySearchTrie(base *PathDecomposedTrie) *PathDecomposedBinarySearchTrie {
	return &PathDecomposedBinarySearchTrie{
		isLeaf:   base.isLeaf,
		heavyStr: base.heavyStr,
		maps:     constructBinarySearchMaps(base.toAdjacency()),
	}
}

func (t *PathDecomposedBinarySearchTrie) Search(line []byte) bool {
	node := int32(0)
	for i := int32(0); i < int32(len(line)); i++ {
		l := lcp(t.heavyStr, node, line, i, int32(len(line))-i)
		node += l
		i += l
		if i == int32(len(line)) {
			break
		}
		node = t.maps.search(node, line[i])
		if node == NotFound {
			return false
		}
	}
	return t.isLeaf.Test(int(node))
}

func (t *PathDecomposedBinarySearchTrie) MemoryUsage() int {
	return 8 + len(t.heavyStr) + 6*int(t.maps.size())
}
