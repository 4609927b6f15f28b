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

package enverr

import (
	"errors"
	"fmt"

	"envx.dev/enverr/apis"
	"envx.dev/enverr/errtree"
	"envx.dev/enverr/taxonomy"
)

// ErrProtectedRelation is the sentinel that frameworks or storage layers
// can wrap when a delete/update is blocked by a protected related object.
// The classifier's built-in remap step translates it into ProtectedObject
// before classification.
var ErrProtectedRelation = errors.New("enverr: operation blocked by protected relation")

// Error is the canonical API exception for enverr.
//
// It carries:
//   - Kind: which recognized exception kind this is (drives the built-in
//     classification table);
//   - Type / DefaultType: optional per-instance and class-level taxonomy
//     overrides;
//   - Status: the HTTP status to surface;
//   - Message / Code: the single-leaf error content for kinds without a
//     structured tree;
//   - Detail: the structured error-detail tree (validation failures);
//   - Wait / HasWait: optional retry wait in seconds (throttles);
//   - Extra: opaque payload passed through into the envelope;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Kind identifies the recognized exception kind, e.g. KindNotFound or
	// KindThrottled. KindServerError is the catch-all.
	Kind Kind

	// Type is an explicit per-instance taxonomy override. When non-empty
	// it is used verbatim, ahead of every other classification tier.
	Type taxonomy.Type

	// DefaultType is the class-level default taxonomy type, consulted when
	// no per-instance override is present. Most kinds leave it empty and
	// rely on the built-in kind table instead.
	DefaultType taxonomy.Type

	// Status is the HTTP status this exception should be surfaced with.
	Status int

	// Message is the human-readable detail for single-leaf kinds. This is
	// what ends up in the "detail" field of the envelope.
	Message string

	// Code is the machine-readable marker for single-leaf kinds, e.g.
	// "not_found" or "throttled".
	Code string

	// Detail is the structured error-detail tree. Nil for kinds whose
	// content is just Message/Code.
	Detail *errtree.Node

	// Wait is the retry wait in whole seconds. Meaningful only when
	// HasWait is true.
	Wait int

	// HasWait records whether a wait value was provided. A throttle
	// without a wait emits no Retry-After header.
	HasWait bool

	// Extra is an optional, opaque payload that the assembler merges into
	// the envelope unmodified. The map is treated as immutable:
	// WithExtra always copies it.
	Extra map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// Compile-time checks: Error must satisfy every capability contract.
var (
	_ apis.TypedError        = (*Error)(nil)
	_ apis.DefaultTypedError = (*Error)(nil)
	_ apis.StatusedError     = (*Error)(nil)
	_ apis.WaitingError      = (*Error)(nil)
	_ apis.ExtraError        = (*Error)(nil)
	_ apis.DetailedError     = (*Error)(nil)
)

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ExceptionType implements apis.TypedError.
func (e *Error) ExceptionType() (string, bool) {
	if e.Type == taxonomy.Empty {
		return "", false
	}
	return e.Type.String(), true
}

// DefaultExceptionType implements apis.DefaultTypedError.
func (e *Error) DefaultExceptionType() (string, bool) {
	if e.DefaultType == taxonomy.Empty {
		return "", false
	}
	return e.DefaultType.String(), true
}

// HTTPStatus implements apis.StatusedError.
func (e *Error) HTTPStatus() int { return e.Status }

// RetryWait implements apis.WaitingError.
func (e *Error) RetryWait() (int, bool) {
	if !e.HasWait {
		return 0, false
	}
	return e.Wait, true
}

// ErrorExtra implements apis.ExtraError.
func (e *Error) ErrorExtra() map[string]any { return e.Extra }

// ErrorDetail implements apis.DetailedError. It returns the effective
// detail tree: the structured tree when one was attached, otherwise a
// single leaf built from Message and Code.
func (e *Error) ErrorDetail() *errtree.Node {
	if e.Detail != nil {
		return e.Detail
	}
	return errtree.Single(errtree.Leaf{Message: e.Message, Code: e.Code})
}

// WithType returns a shallow copy of e with a per-instance taxonomy
// override set. The original error is not modified.
func (e *Error) WithType(t taxonomy.Type) *Error {
	cp := *e
	cp.Type = t
	return &cp
}

// WithStatus returns a shallow copy of e with a replaced HTTP status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCode returns a shallow copy of e with a replaced machine code.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.Code = code
	return &cp
}

// WithDetail returns a shallow copy of e with the structured detail tree
// attached.
func (e *Error) WithDetail(node *errtree.Node) *Error {
	cp := *e
	cp.Detail = node
	return &cp
}

// WithWait returns a shallow copy of e with the retry wait set, in whole
// seconds.
func (e *Error) WithWait(seconds int) *Error {
	cp := *e
	cp.Wait = seconds
	cp.HasWait = true
	return &cp
}

// WithExtra returns a shallow copy of e with all provided kv merged into
// Extra.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithExtra(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Extra)+len(kv))
	for k, v := range cp.Extra {
		m[k] = v
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Extra = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
