/*
   Copyright 2025 The ENVX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errtree

// DefaultLeaf is the leaf used when an exception carries no structured
// detail at all. The message is deliberately fixed and generic so that
// internal error text never leaks to API consumers.
var DefaultLeaf = Leaf{Message: "A server error occurred.", Code: "error"}

// NormalizedError is one flat record of the normalized output: the path
// locating a leaf group in the original tree, plus the group's leaves.
//
// Leaves is never empty. Path may be empty — that denotes a top-level,
// non-field error.
type NormalizedError struct {
	Path   []Segment
	Leaves []Leaf
}

// Normalize recursively flattens a tree into an ordered list of records.
//
// The recursion follows the node shape:
//
//   - Single: one record under the parent path;
//   - Flat: one record carrying all leaves under the parent path;
//   - Nested: each entry recurses with its key appended, results
//     concatenated in insertion order;
//   - ManyFlat: one record per group, with the group's position appended
//     as an Index segment;
//   - ManyNested: each item recurses with its position appended as an
//     Index segment, results concatenated in order;
//   - nil (absent): exactly one record holding DefaultLeaf under an empty
//     path.
//
// Output order mirrors input insertion order at every level. The first
// record is the primary error; in multi-error mode the order becomes the
// order of the envelope list.
//
// Empty Flat nodes and empty ManyFlat groups produce no record: a record
// with no leaves would violate the Leaves invariant. Skipping a group does
// not shift the indices of its siblings.
func Normalize(n *Node, parent []Segment) []NormalizedError {
	if n == nil {
		return []NormalizedError{{Path: clonePath(parent), Leaves: []Leaf{DefaultLeaf}}}
	}

	switch n.shape {
	case ShapeSingle:
		return []NormalizedError{{Path: clonePath(parent), Leaves: []Leaf{n.leaf}}}

	case ShapeFlat:
		if len(n.leaves) == 0 {
			return nil
		}
		return []NormalizedError{{Path: clonePath(parent), Leaves: cloneLeaves(n.leaves)}}

	case ShapeNested:
		var out []NormalizedError
		for _, f := range n.fields {
			out = append(out, Normalize(f.Node, appendSegment(parent, FieldSegment(f.Key)))...)
		}
		return out

	case ShapeManyFlat:
		out := make([]NormalizedError, 0, len(n.groups))
		for i, g := range n.groups {
			if len(g) == 0 {
				continue
			}
			out = append(out, NormalizedError{
				Path:   appendSegment(parent, IndexSegment(i)),
				Leaves: cloneLeaves(g),
			})
		}
		return out

	case ShapeManyNested:
		var out []NormalizedError
		for i, item := range n.items {
			out = append(out, Normalize(item, appendSegment(parent, IndexSegment(i)))...)
		}
		return out
	}

	return nil
}

// clonePath copies a path so that records never alias the caller's slice.
func clonePath(path []Segment) []Segment {
	if len(path) == 0 {
		return nil
	}
	cp := make([]Segment, len(path))
	copy(cp, path)
	return cp
}

// appendSegment returns parent + [seg] as a fresh slice. A plain append
// could share backing arrays between sibling branches of the recursion.
func appendSegment(parent []Segment, seg Segment) []Segment {
	cp := make([]Segment, len(parent)+1)
	copy(cp, parent)
	cp[len(parent)] = seg
	return cp
}

// cloneLeaves copies a leaf slice for the same aliasing reason.
func cloneLeaves(leaves []Leaf) []Leaf {
	cp := make([]Leaf, len(leaves))
	copy(cp, leaves)
	return cp
}
