package packedidx

import "errors"

// doubleArrayMaps is the double-array child-map backend. A node with
// base b stores its edge labelled c in cell b+c: check[b+c] holds c and
// next[b+c] the target. check[i] == NullChar means cell i is empty.
// Lookup is a single probe; the backend is construct-once.
type doubleArrayMaps struct {
	next  []int32
	check []byte
}

func newDoubleArrayMaps(size int) *doubleArrayMaps {
	m := &doubleArrayMaps{}
	m.extendTo(size)
	return m
}

func (m *doubleArrayMaps) extendTo(size int) {
	for len(m.next) < size {
		m.next = append(m.next, NotFound)
		m.check = append(m.check, NullChar)
	}
}

func (m *doubleArrayMaps) size() int32 {
	return int32(len(m.next))
}

func (m *doubleArrayMaps) search(idx int32, ch byte) int32 {
	idx += int32(ch)
	if idx < int32(len(m.check)) && m.check[idx] == ch {
		return m.next[idx]
	}
	return NotFound
}

// findBase advances cur to the first base at which every edge of the
// node fits into empty cells, growing the arrays as needed.
func (m *doubleArrayMaps) findBase(cur int32, edges []edge) int32 {
	for ; ; cur++ {
		ok := true
		for _, e := range edges {
			cell := cur + int32(e.ch)
			if cell >= int32(len(m.next)) {
				m.extendTo(int(cell) + 1)
			} else if m.check[cell] != NullChar {
				ok = false
				break
			}
		}
		if ok {
			return cur
		}
	}
}

// constructDoubleArrayWithoutReindexing lays out every node of data in
// index order and writes edge targets verbatim. Node ids therefore keep
// their meaning; the returned slice maps each id to its base so callers
// can translate before probing.
func constructDoubleArrayWithoutReindexing(data adjacency) (*doubleArrayMaps, []int32) {
	maps := newDoubleArrayMaps(len(data))
	bases := make([]int32, len(data))
	cur := int32(0)
	for i := range data {
		cur = maps.findBase(cur, data[i])
		for _, e := range data[i] {
			maps.check[cur+int32(e.ch)] = e.ch
			maps.next[cur+int32(e.ch)] = e.to
		}
		bases[i] = cur
		cur++
	}
	// a trailing run of leaves can be assigned bases past the last
	// claimed cell; keep every base a valid probe origin
	maps.extendTo(int(cur))
	return maps, bases
}

// constructDoubleArrayWithReindexing lays out every node of data in
// index order and renumbers it to its base, so a probe yields the next
// base directly. Cells pointing at a node are only known once that
// node's base is, so each node keeps a reverse list of cells awaiting
// it and patches them on placement. Tail-tagged targets are literal
// pool offsets and are never patched.
func constructDoubleArrayWithReindexing(data adjacency) (*doubleArrayMaps, []int32) {
	inv := make([][]int32, len(data))
	maps := newDoubleArrayMaps(len(data))
	bases := make([]int32, len(data))
	cur := int32(0)
	for i := range data {
		cur = maps.findBase(cur, data[i])
		for _, e := range data[i] {
			maps.check[cur+int32(e.ch)] = e.ch
			if isTail(e.to) {
				maps.next[cur+int32(e.ch)] = e.to
			} else {
				inv[e.to] = append(inv[e.to], cur+int32(e.ch))
			}
		}
		bases[i] = cur
		for _, cell := range inv[i] {
			maps.next[cell] = cur
		}
		cur++
	}
	maps.extendTo(int(cur))
	return maps, bases
}

// assertRootBase guards the invariant that the root is always placed at
// base 0 by both constructions.
func assertRootBase(bases []int32) {
	if bases[0] != 0 {
		panic(errors.New("packedidx: double array did not place the root at base 0"))
	}
}
