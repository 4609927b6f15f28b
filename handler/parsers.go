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

package handler

import (
	"errors"

	"envx.dev/enverr"
	"envx.dev/enverr/apis"
	"envx.dev/enverr/errtree"
)

// DetailParser extracts the structured error-detail tree from a matching
// exception. Parsers are consulted in order, first match wins; an exception
// no parser matches has no structured detail and normalizes to the default
// server-error record.
type DetailParser interface {
	// Match reports whether this parser can handle the exception.
	Match(err error) bool

	// Parse returns the detail tree for a matched exception. May return
	// nil when the matched exception turns out to carry nothing usable.
	Parse(err error) *errtree.Node
}

// defaultParsers returns the built-in chain: validation exceptions first
// (their trees are taken as-is, with top-level leaf sequences anchored
// under an object-level key), then any exception exposing a single-leaf
// detail.
func defaultParsers() []DetailParser {
	return []DetailParser{
		validationParser{},
		singleLeafParser{},
	}
}

// validationParser handles recognized validation exceptions. A Nested tree
// is used directly; any other top-level shape (a bare leaf, a leaf list, a
// list of groups) is anchored under the empty key, which renders as an
// object-level error (attr null) unless deeper segments apply.
type validationParser struct{}

func (validationParser) Match(err error) bool {
	var e *enverr.Error
	return errors.As(err, &e) && e.Kind == enverr.KindValidation
}

func (validationParser) Parse(err error) *errtree.Node {
	var e *enverr.Error
	if !errors.As(err, &e) {
		return nil
	}
	node := e.ErrorDetail()
	if node == nil {
		return nil
	}
	if node.Shape() == errtree.ShapeNested {
		return node
	}
	return errtree.Nested(errtree.Field("", node))
}

// singleLeafParser handles every exception that exposes a single-leaf
// detail tree — the whole family of non-validation API exceptions. Richer
// shapes on non-validation exceptions are not recognized and fall through
// to "no structured detail".
type singleLeafParser struct{}

func (singleLeafParser) Match(err error) bool {
	var de apis.DetailedError
	if !errors.As(err, &de) {
		return false
	}
	node := de.ErrorDetail()
	return node != nil && node.Shape() == errtree.ShapeSingle
}

func (singleLeafParser) Parse(err error) *errtree.Node {
	var de apis.DetailedError
	if !errors.As(err, &de) {
		return nil
	}
	return errtree.Nested(errtree.Field("", de.ErrorDetail()))
}
