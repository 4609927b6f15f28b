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
	"envx.dev/enverr/errtree"
	"envx.dev/enverr/taxonomy"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithTypeOption sets a per-instance taxonomy override on the error being
// constructed. Intended to be used with the kind constructors.
func WithTypeOption(t taxonomy.Type) Option {
	return func(e *Error) *Error {
		return e.WithType(t)
	}
}

// WithStatusOption replaces the HTTP status on construction.
func WithStatusOption(status int) Option {
	return func(e *Error) *Error {
		return e.WithStatus(status)
	}
}

// WithMessageOption replaces the human message on construction.
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error {
		return e.WithMessage(msg)
	}
}

// WithCodeOption replaces the machine code on construction.
func WithCodeOption(code string) Option {
	return func(e *Error) *Error {
		return e.WithCode(code)
	}
}

// WithDetailOption attaches a structured detail tree on construction.
func WithDetailOption(node *errtree.Node) Option {
	return func(e *Error) *Error {
		return e.WithDetail(node)
	}
}

// WithWaitOption sets the retry wait (whole seconds) on construction.
func WithWaitOption(seconds int) Option {
	return func(e *Error) *Error {
		return e.WithWait(seconds)
	}
}

// WithExtraOption merges an opaque extra payload on construction.
func WithExtraOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithExtra(kv)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
