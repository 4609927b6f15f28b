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

// Leaf is a terminal error unit: a human-readable message plus a
// machine-readable code. Leaves are produced by the upstream validation
// layer and are never mutated by this package.
type Leaf struct {
	// Message is the human-readable explanation, e.g.
	// "This field is required.".
	Message string

	// Code is the machine-readable marker, e.g. "required" or
	// "unsafe_password". Codes are passed through verbatim; any rewriting
	// (such as "invalid" -> "invalid_input") happens at envelope assembly.
	Code string
}

// Shape identifies which variant of the tree union a Node holds.
//
// A node's shape is fixed at construction: the constructors below are
// strictly typed, so a sequence mixing leaf and nested elements is simply
// unrepresentable. This is the construction-time answer to "what happens on
// heterogeneous input" — it is rejected before it can exist.
type Shape int

const (
	// ShapeSingle is one leaf.
	ShapeSingle Shape = iota

	// ShapeFlat is an ordered sequence of leaves under the same path.
	ShapeFlat

	// ShapeNested is an ordered mapping from field key to child node.
	ShapeNested

	// ShapeManyFlat is an ordered sequence of leaf groups, one group per
	// repeated-field instance. Positions become Index path segments.
	ShapeManyFlat

	// ShapeManyNested is an ordered sequence of child nodes, one per
	// repeated-field instance. Positions become Index path segments.
	ShapeManyNested
)

// String returns the lowercase tag of the shape, mostly for tests and logs.
func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeFlat:
		return "flat"
	case ShapeNested:
		return "nested"
	case ShapeManyFlat:
		return "many_flat"
	case ShapeManyNested:
		return "many_nested"
	}
	return "unknown"
}

// Entry is one key/child pair of a Nested node. Insertion order is
// preserved; it determines normalization order and therefore which record
// is the primary error.
type Entry struct {
	Key  string
	Node *Node
}

// Node is the tagged union over the five tree shapes. The zero value is not
// useful; always build nodes through the constructors. A nil *Node means
// "no structured detail available" and normalizes to the default record.
//
// Nodes are immutable after construction: constructors copy the slices they
// receive, so callers may reuse or mutate their inputs freely.
type Node struct {
	shape  Shape
	leaf   Leaf    // ShapeSingle
	leaves []Leaf  // ShapeFlat
	fields []Entry // ShapeNested
	groups [][]Leaf // ShapeManyFlat
	items  []*Node // ShapeManyNested
}

// Shape returns the variant tag of the node.
func (n *Node) Shape() Shape { return n.shape }

// Single builds a node holding exactly one leaf.
func Single(l Leaf) *Node {
	return &Node{shape: ShapeSingle, leaf: l}
}

// Flat builds a node holding an ordered sequence of leaves that all live
// under the same path. The first leaf is authoritative for code and detail
// at assembly time.
func Flat(leaves ...Leaf) *Node {
	cp := make([]Leaf, len(leaves))
	copy(cp, leaves)
	return &Node{shape: ShapeFlat, leaves: cp}
}

// Field is a convenience constructor for a Nested entry.
func Field(key string, n *Node) Entry {
	return Entry{Key: key, Node: n}
}

// Nested builds a node from ordered key/child entries. Keys are expected to
// be unique; duplicates are kept as-is and each produces its own records in
// insertion order.
func Nested(fields ...Entry) *Node {
	cp := make([]Entry, len(fields))
	copy(cp, fields)
	return &Node{shape: ShapeNested, fields: cp}
}

// ManyFlat builds a node from ordered leaf groups, one group per
// repeated-field instance. The group's position becomes an Index segment.
func ManyFlat(groups ...[]Leaf) *Node {
	cp := make([][]Leaf, len(groups))
	for i, g := range groups {
		gc := make([]Leaf, len(g))
		copy(gc, g)
		cp[i] = gc
	}
	return &Node{shape: ShapeManyFlat, groups: cp}
}

// ManyNested builds a node from ordered child nodes, one per repeated-field
// instance. Each child is normally a Nested node (one map per instance); the
// item's position becomes an Index segment.
func ManyNested(items ...*Node) *Node {
	cp := make([]*Node, len(items))
	copy(cp, items)
	return &Node{shape: ShapeManyNested, items: cp}
}

// Fields returns the ordered entries of a Nested node, or nil for any other
// shape. The returned slice is a copy.
func (n *Node) Fields() []Entry {
	if n == nil || n.shape != ShapeNested {
		return nil
	}
	cp := make([]Entry, len(n.fields))
	copy(cp, n.fields)
	return cp
}

// Leaves returns the leaves of a Single or Flat node, or nil for any other
// shape. The returned slice is a copy.
func (n *Node) Leaves() []Leaf {
	if n == nil {
		return nil
	}
	switch n.shape {
	case ShapeSingle:
		return []Leaf{n.leaf}
	case ShapeFlat:
		cp := make([]Leaf, len(n.leaves))
		copy(cp, n.leaves)
		return cp
	}
	return nil
}
