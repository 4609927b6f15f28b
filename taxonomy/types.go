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

package taxonomy

// Built-in taxonomy types
//
// These are the coarse error categories that API consumers are expected to
// switch on. Custom types are still supported: any exception may carry a
// per-instance override or a class-level default that passes Validate.
const (
	// AuthenticationError indicates that the caller could not be
	// authenticated or is not allowed to perform the operation.
	// Covers failed credentials, missing credentials, and permission
	// denials.
	//
	// Typically surfaced with HTTP 401 or 403.
	AuthenticationError Type = "authentication_error"

	// InvalidRequest indicates that the request itself is malformed or
	// cannot be served as asked: unknown route, disallowed method,
	// unacceptable content negotiation, unsupported media type, or an
	// unparseable body.
	//
	// Typically surfaced with an HTTP 4xx other than 401/403/429.
	InvalidRequest Type = "invalid_request"

	// ServerError indicates an internal, non-classified failure. This is
	// the fallback for every exception that no matcher recognizes; its
	// detail string is fixed and never echoes internal error text.
	//
	// Typically surfaced with HTTP 500.
	ServerError Type = "server_error"

	// ThrottledError indicates that the caller is being rate limited and
	// should retry later. The envelope may be accompanied by a Retry-After
	// header when the throttle knows its wait time.
	//
	// Typically surfaced with HTTP 429.
	ThrottledError Type = "throttled_error"

	// ValidationError indicates that the request was well-formed but its
	// payload failed validation. This is the only type whose detail tree
	// is usually nested and may normalize into multiple records.
	//
	// Typically surfaced with HTTP 400.
	ValidationError Type = "validation_error"

	// Multiple is the fixed type of the multi-error envelope. It is never
	// produced by classification; the assembler uses it as the top-level
	// type when more than one normalized error is rendered.
	Multiple Type = "multiple"
)
