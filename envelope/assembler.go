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

import (
	"envx.dev/enverr/apis"
	"envx.dev/enverr/errtree"
	"envx.dev/enverr/taxonomy"
)

// Default configuration values. They mirror the conventions of the
// upstream validation layer: double-underscore joins nested keys, and two
// reserved keys denote object-level (non-field) errors.
const (
	DefaultSeparator   = "__"
	DefaultCatchAllKey = "__all__"
	DefaultNonFieldKey = "non_field_errors"
)

// New constructs an immutable Assembler snapshot. Options are applied to an
// internal builder and then frozen; the result is safe for concurrent use.
func New(opts ...Option) *Assembler {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return &Assembler{
		separator:   b.separator,
		catchAllKey: b.catchAllKey,
		nonFieldKey: b.nonFieldKey,
		multiple:    b.multiple,
	}
}

// Assembler renders classified exceptions and normalized records into
// envelopes. It is immutable after construction.
type Assembler struct {
	// separator joins path segments into the attr string.
	separator string

	// catchAllKey and nonFieldKey are the reserved path keys denoting
	// object-level errors; a fully joined path equal to either renders
	// attr as null.
	catchAllKey string
	nonFieldKey string

	// multiple enables the multi-error envelope when more than one
	// normalized record exists.
	multiple bool
}

// RewriteCode applies the code override rule: the generic framework code
// "invalid" becomes the clearer "invalid_input"; every other code passes
// through unchanged. The rule is idempotent.
func RewriteCode(code string) string {
	if code == "invalid" {
		return "invalid_input"
	}
	return code
}

// Assemble builds the envelope for a classified exception and its ordered
// normalized records.
//
// With multi-error support off, or with exactly one record, the envelope is
// the first record rendered directly. With support on and more than one
// record, the top level is the fixed "multiple" frame and every record
// becomes a list entry (without extra), in normalization order.
//
// An empty record list is treated as absent detail and yields the default
// server-error record.
func (a *Assembler) Assemble(cls apis.Classified, records []errtree.NormalizedError) Envelope {
	if len(records) == 0 {
		records = errtree.Normalize(nil, nil)
	}

	if a.multiple && len(records) > 1 {
		list := make([]Entry, len(records))
		for i, rec := range records {
			list[i] = a.entry(cls.Type, rec)
		}
		return Envelope{
			Type:   taxonomy.Multiple.String(),
			Code:   taxonomy.Multiple.String(),
			Detail: MultipleDetail,
			Attr:   nil,
			Extra:  cls.Extra,
			List:   list,
		}
	}

	first := a.entry(cls.Type, records[0])
	return Envelope{
		Type:   first.Type,
		Code:   first.Code,
		Detail: first.Detail,
		Attr:   first.Attr,
		Extra:  cls.Extra,
	}
}

// entry renders one normalized record. The first leaf is authoritative for
// code and detail.
func (a *Assembler) entry(typ string, rec errtree.NormalizedError) Entry {
	leaf := rec.Leaves[0]
	return Entry{
		Type:   typ,
		Code:   RewriteCode(leaf.Code),
		Detail: leaf.Message,
		Attr:   a.attr(rec.Path),
	}
}

// attr joins the record's path with the configured separator. The result is
// null for an empty path and for the reserved object-level keys — the
// comparison runs against the *fully joined* path, so a reserved key buried
// under a parent still renders normally.
func (a *Assembler) attr(path []errtree.Segment) *string {
	joined := errtree.Join(path, a.separator)
	if joined == "" || joined == a.catchAllKey || joined == a.nonFieldKey {
		return nil
	}
	return &joined
}
