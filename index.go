package packedidx

// EOW is the end-of-word sentinel appended to every stored string.
const EOW byte = 1

// NullChar marks an empty cell in the double array and terminates
// heavy paths. Stored strings must not contain it.
const NullChar byte = 0

// NotFound is returned by child-map lookups when no edge matches.
const NotFound int32 = -1

// tailFlag is the high bit of a 32-bit node index. A target carrying it
// is not a node id but an offset into the tail pool.
const tailFlag = int32(-1 << 31)

func isTail(v int32) bool { return v&tailFlag != 0 }

func tailOffset(v int32) int32 { return v &^ tailFlag }

func tagTail(ofs int32) int32 { return ofs | tailFlag }

// Index is the one contract shared by all fifteen variants.
type Index interface {
	// Search reports whether line, which must be EOW-terminated,
	// is in the dictionary the index was built from.
	Search(line []byte) bool
}

// MemoryReporter is implemented by the frozen variants. The returned
// value follows a fixed accounting formula over the owned arrays, not a
// byte-exact measurement of runtime overhead.
type MemoryReporter interface {
	MemoryUsage() int
}

// edge is one labelled transition. The target may be tail-tagged.
type edge struct {
	ch byte
	to int32
}

// adjacency is the flattened form handed between indices: the outgoing
// edges of each node, ascending by label. The handover is one-shot; the
// receiving constructor may consume it.
type adjacency [][]edge
