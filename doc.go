/*
Package packedidx is a family of static string-dictionary indices built
around tries and minimal acyclic deterministic finite automata (ADFA).

Every index answers a single question: is this exact byte string in the
dictionary? The family is the cross product of two base structures (trie
and minimal ADFA), two path-compression transforms (tail compaction and
heavy-path decomposition) and three child-map encodings (ordered map per
node, sorted array with a succinct rank/select bit vector, and a double
array), fifteen variants in all. They trade construction time, query
latency and memory footprint against each other; the bench package and
the packedidx-bench command measure those trade-offs on real datasets.

Strings are opaque byte sequences. Every stored string must be terminated
by the end-of-word sentinel EOW (byte value 1), and must not contain the
byte 0, which is reserved as the empty-cell marker in the double array and
as the heavy-path terminator.

To use it, build a BaseTrie from the dictionary. The trie is the only
mutable structure; every other index is derived from an already-built
predecessor by a one-shot transformation and is immutable afterwards.
Frozen indices may be shared freely across goroutines, since Search
writes no state. The derived indices have no insertion method.
*/
package packedidx
