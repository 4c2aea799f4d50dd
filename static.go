package packedidx

import "github.com/milden6/packedidx/internal/bitvec"

// DoubleArrayTrie re-encodes the trie in the double-array backend with
// reindexing, so that each node's physical id is its base and a probe
// yields the next base directly.
type DoubleArrayTrie struct {
	isLeaf *bitvec.Vector
	maps   *doubleArrayMaps
}

func NewDoubleArrayTrie(base *BaseTrie) *DoubleArrayTrie {
	data := base.toAdjacency()
	maps, bases := constructDoubleArrayWithReindexing(data)
	assertRootBase(bases)
	isLeaf := bitvec.New(int(maps.size()))
	for i, edges := range data {
		if len(edges) == 0 {
			isLeaf.Set(int(bases[i]))
		}
	}
	return &DoubleArrayTrie{isLeaf: isLeaf, maps: maps}
}

func (t *DoubleArrayTrie) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = t.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return t.isLeaf.Test(int(node))
}

func (t *DoubleArrayTrie) MemoryUsage() int {
	return t.isLeaf.MemoryBits()/8 + 5*int(t.maps.size())
}

// BinarySearchTrie re-encodes the trie in the sorted-array backend.
// Node ids are unchanged.
type BinarySearchTrie struct {
	isLeaf *bitvec.Vector
	maps   *binarySearchMaps
}

func NewBinarySearchTrie(base *BaseTrie) *BinarySearchTrie {
	data := base.toAdjacency()
	isLeaf := bitvec.New(len(data))
	for i, edges := range data {
		if len(edges) == 0 {
			isLeaf.Set(i)
		}
	}
	return &BinarySearchTrie{isLeaf: isLeaf, maps: constructBinarySearchMaps(data)}
}

func (t *BinarySearchTrie) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = t.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return t.isLeaf.Test(int(node))
}

func (t *BinarySearchTrie) MemoryUsage() int {
	return t.isLeaf.MemoryBits()/8 + 6*int(t.maps.size())
}

// DoubleArrayADFA re-encodes the automaton in the double-array backend
// with reindexing.
type DoubleArrayADFA struct {
	sink int32
	maps *doubleArrayMaps
}

func NewDoubleArrayADFA(base *BaseADFA) *DoubleArrayADFA {
	data := base.toAdjacency()
	maps, bases := constructDoubleArrayWithReindexing(data)
	assertRootBase(bases)
	return &DoubleArrayADFA{sink: bases[len(bases)-1], maps: maps}
}

func (a *DoubleArrayADFA) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = a.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return node == a.sink
}

func (a *DoubleArrayADFA) MemoryUsage() int {
	return 4 + 5*int(a.maps.size())
}

// BinarySearchADFA re-encodes the automaton in the sorted-array
// backend. Node ids are unchanged, so the sink stays the last id.
type BinarySearchADFA struct {
	sink int32
	maps *binarySearchMaps
}

func NewBinarySearchADFA(base *BaseADFA) *BinarySearchADFA {
	data := base.toAdjacency()
	return &BinarySearchADFA{
		sink: int32(len(data)) - 1,
		maps: constructBinarySearchMaps(data),
	}
}

func (a *BinarySearchADFA) Search(line []byte) bool {
	node := int32(0)
	for _, ch := range line {
		node = a.maps.search(node, ch)
		if node == NotFound {
			return false
		}
	}
	return node == a.sink
}

func (a *BinarySearchADFA) MemoryUsage() int {
	return 4 + 6*int(a.maps.size())
}
