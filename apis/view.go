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

// Classified is the flat outcome of running an exception through the
// classifier chain: the taxonomy type to expose, the HTTP status to answer
// with, response headers to set, and the exception's opaque extra payload.
//
// This type intentionally uses strings (not the internal taxonomy value
// type) so that it can live in the public "apis" layer and be consumed by
// adapters without extra imports.
type Classified struct {
	// Type is the resolved taxonomy type, e.g. "validation_error".
	// It is always non-empty: unmatched exceptions resolve to
	// "server_error".
	Type string

	// HTTPStatus is the resolved HTTP status. Always non-zero; exceptions
	// without an explicit status resolve to 500.
	HTTPStatus int

	// Headers holds response headers implied by the exception, such as
	// Retry-After for throttles. Nil when there are none.
	Headers map[string]string

	// Extra is the exception's opaque payload, passed through unmodified.
	// Nil when absent.
	Extra map[string]any
}
