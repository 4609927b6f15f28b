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

package envelope

// MultipleDetail is the fixed human-readable detail of the multi-error
// envelope.
const MultipleDetail = "Multiple exceptions occurred. Please check list for details."

// Entry is one error of a multi-error envelope: the same four fields as a
// single envelope, without extra.
type Entry struct {
	// Type is the taxonomy type, identical for every entry of one
	// envelope (all records come from the same classified exception).
	Type string `json:"type"`

	// Code is the machine-readable code of the record's first leaf, after
	// the invalid -> invalid_input rewrite.
	Code string `json:"code"`

	// Detail is the human-readable message of the record's first leaf.
	Detail string `json:"detail"`

	// Attr is the flattened path of the record, or null for object-level
	// errors. The field is always present in JSON; nil serializes as
	// explicit null.
	Attr *string `json:"attr"`
}

// Envelope is the final structured error body returned to the caller.
//
// In single-error mode it renders the primary record's type/code/detail/attr.
// In multi-error mode the top level is fixed (type and code "multiple", the
// MultipleDetail message, attr null) and List carries one Entry per record
// in normalization order.
type Envelope struct {
	Type   string  `json:"type"`
	Code   string  `json:"code"`
	Detail string  `json:"detail"`
	Attr   *string `json:"attr"`

	// EventID is the opaque identifier returned by the reporting hook, if
	// any. Omitted when empty.
	EventID string `json:"event_id,omitempty"`

	// Extra is the exception's opaque payload, passed through unmodified.
	// Omitted when absent.
	Extra map[string]any `json:"extra,omitempty"`

	// List holds the per-record entries in multi-error mode. Omitted in
	// single-error mode.
	List []Entry `json:"list,omitempty"`
}
