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

import (
	"strconv"
	"strings"
)

// SegmentKind distinguishes field-name path segments from positional index
// segments. Index segments originate from ManyFlat / ManyNested positions.
type SegmentKind int

const (
	// FieldKey is a segment naming a field of the validated object.
	FieldKey SegmentKind = iota

	// Index is a segment locating an instance of a repeated field.
	Index
)

// Segment is one element of the path locating a leaf group within the
// original nested tree. Segments are immutable values.
type Segment struct {
	kind  SegmentKind
	key   string
	index int
}

// FieldSegment builds a field-name segment.
func FieldSegment(key string) Segment {
	return Segment{kind: FieldKey, key: key}
}

// IndexSegment builds a positional segment.
func IndexSegment(i int) Segment {
	return Segment{kind: Index, index: i}
}

// Kind returns the segment kind.
func (s Segment) Kind() SegmentKind { return s.kind }

// IsIndex reports whether the segment is positional.
func (s Segment) IsIndex() bool { return s.kind == Index }

// String renders the segment the way it appears inside an attr: the field
// key verbatim, or the decimal form of the index.
func (s Segment) String() string {
	if s.kind == Index {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Join renders a path as a single string using the given separator. An empty
// path joins to "". Note that a field key may itself contain the separator
// string; Join performs plain concatenation and makes no attempt to escape,
// so consumers must treat the joined form as opaque.
func Join(path []Segment, sep string) string {
	switch len(path) {
	case 0:
		return ""
	case 1:
		return path[0].String()
	}
	var b strings.Builder
	for i, s := range path {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s.String())
	}
	return b.String()
}
