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

package apis

import "envx.dev/enverr/errtree"

// TypedError represents an exception that carries an explicit, per-instance
// taxonomy-type override. When present, the override is used verbatim and
// wins over every other classification tier.
//
// Implementations SHOULD return a normalized taxonomy value (lowercase,
// underscores); adapters treat unknown values as opaque custom types.
type TypedError interface {
	error

	// ExceptionType returns the per-instance taxonomy type override.
	// ok is false when the instance carries no override.
	ExceptionType() (string, bool)
}

// DefaultTypedError represents an exception whose kind declares a
// class-level default taxonomy type. It is consulted only when no
// per-instance override is present.
type DefaultTypedError interface {
	error

	// DefaultExceptionType returns the class-level default taxonomy type.
	// ok is false when the kind declares no default.
	DefaultExceptionType() (string, bool)
}

// StatusedError represents an exception that knows which HTTP status it
// should be surfaced with. Exceptions without this capability default to
// 500 at classification time.
type StatusedError interface {
	error

	// HTTPStatus returns the HTTP status for this exception. A value of 0
	// means "not specified" and callers must fall back to their default.
	HTTPStatus() int
}

// WaitingError represents a throttle-style exception that may know how long
// the caller should wait before retrying.
type WaitingError interface {
	error

	// RetryWait returns the wait in whole seconds. ok is false when the
	// throttle has no known wait; in that case no retry header is emitted.
	RetryWait() (seconds int, ok bool)
}

// ExtraError represents an exception carrying an opaque extra payload that
// is passed through unmodified into the envelope.
//
// Implementations SHOULD return a map that is safe to read concurrently and
// that they will not mutate afterwards. Returning nil means "no extra".
type ExtraError interface {
	error

	// ErrorExtra returns the opaque extra payload. May return nil.
	ErrorExtra() map[string]any
}

// DetailedError represents an exception that exposes a structured
// error-detail tree, typically a validation failure with per-field leaves.
//
// Returning nil means "no structured detail"; the normalizer then produces
// the single default server-error record.
type DetailedError interface {
	error

	// ErrorDetail returns the structured detail tree. May return nil.
	ErrorDetail() *errtree.Node
}
