package packedidx

// eow returns s with the end-of-word sentinel appended.
func eow(s string) []byte {
	return append([]byte(s), EOW)
}

func eowAll(ss ...string) [][]byte {
	lines := make([][]byte, len(ss))
	for i, s := range ss {
		lines[i] = eow(s)
	}
	return lines
}
