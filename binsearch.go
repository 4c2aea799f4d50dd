package packedidx

import (
	"github.com/milden6/packedidx/internal/bitvec"
	"golang.org/x/exp/slices"
)

// binarySearchMaps is the sorted-array child-map backend. The edges of
// all nodes are concatenated into one array, ascending by label within
// each node. A delimiter bit vector with a set bit at each node
// boundary (and a trailing one) recovers each node's contiguous range
// through rank and select.
type binarySearchMaps struct {
	bv   *bitvec.Vector
	elms []edge
}

func constructBinarySearchMaps(data adjacency) *binarySearchMaps {
	total := 0
	for _, edges := range data {
		total += len(edges)
	}
	bv := bitvec.New(total + len(data) + 1)
	elms := make([]edge, 0, total)
	cur := 0
	for _, edges := range data {
		bv.Set(cur)
		cur++
		sorted := slices.Clone(edges)
		slices.SortFunc(sorted, func(a, b edge) int { return int(a.ch) - int(b.ch) })
		for _, e := range sorted {
			elms = append(elms, e)
			cur++
		}
	}
	bv.Set(cur)
	bv.Freeze()
	return &binarySearchMaps{bv: bv, elms: elms}
}

func (m *binarySearchMaps) size() int32 {
	return int32(len(m.elms))
}

// search binary-searches the node's range, switching to a
// short-circuiting linear scan once the range is small.
func (m *binarySearchMaps) search(idx int32, ch byte) int32 {
	l := m.bv.Select1(idx + 1)
	l -= m.bv.Rank1(l)
	r := m.bv.Select1(idx + 2)
	r -= m.bv.Rank1(r)
	const linearSearchBorder = 5
	for r-l > linearSearchBorder {
		mid := (l + r) >> 1
		if m.elms[mid].ch == ch {
			return m.elms[mid].to
		} else if m.elms[mid].ch < ch {
			l = mid
		} else {
			r = mid
		}
	}
	for i := l; i < r; i++ {
		if m.elms[i].ch == ch {
			return m.elms[i].to
		} else if ch < m.elms[i].ch {
			return NotFound
		}
	}
	return NotFound
}
