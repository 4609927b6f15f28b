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
	"fmt"
	"net/http"

	"envx.dev/enverr/errtree"
	"envx.dev/enverr/taxonomy"
)

// Kind enumerates the recognized exception kinds. The classifier's built-in
// table matches on Kind; anything it does not cover falls through to
// server_error.
type Kind int

const (
	// KindServerError is the catch-all for unexpected failures.
	KindServerError Kind = iota
	// KindAuthenticationFailed marks failed credential verification.
	KindAuthenticationFailed
	// KindNotAuthenticated marks missing credentials.
	KindNotAuthenticated
	// KindPermissionDenied marks an authenticated caller without rights.
	KindPermissionDenied
	// KindMethodNotAllowed marks a disallowed HTTP method.
	KindMethodNotAllowed
	// KindNotAcceptable marks failed content negotiation.
	KindNotAcceptable
	// KindUnsupportedMediaType marks an unsupported request body type.
	KindUnsupportedMediaType
	// KindNotFound marks a missing resource or route.
	KindNotFound
	// KindParseError marks an unparseable request body.
	KindParseError
	// KindThrottled marks a rate-limited caller.
	KindThrottled
	// KindValidation marks a payload that failed validation.
	KindValidation
	// KindProtectedObject marks an operation blocked by a protected
	// related object.
	KindProtectedObject
)

// String returns the lowercase tag of the kind, mostly for logs.
func (k Kind) String() string {
	switch k {
	case KindServerError:
		return "server_error"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindPermissionDenied:
		return "permission_denied"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindNotAcceptable:
		return "not_acceptable"
	case KindUnsupportedMediaType:
		return "unsupported_media_type"
	case KindNotFound:
		return "not_found"
	case KindParseError:
		return "parse_error"
	case KindThrottled:
		return "throttled"
	case KindValidation:
		return "validation"
	case KindProtectedObject:
		return "protected_object"
	}
	return "unknown"
}

// newError is the shared base constructor: canonical message, code and
// status for a kind, with options applied in order.
func newError(kind Kind, msg, code string, status int, opts ...Option) *Error {
	e := &Error{Kind: kind, Message: msg, Code: code, Status: status}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// ServerError builds the generic internal failure. Its message is the fixed
// non-leaking detail string.
func ServerError(opts ...Option) *Error {
	return newError(KindServerError,
		"A server error occurred.", "error",
		http.StatusInternalServerError, opts...)
}

// AuthenticationFailed builds the failed-credentials exception.
func AuthenticationFailed(opts ...Option) *Error {
	return newError(KindAuthenticationFailed,
		"Incorrect authentication credentials.", "authentication_failed",
		http.StatusUnauthorized, opts...)
}

// NotAuthenticated builds the missing-credentials exception.
func NotAuthenticated(opts ...Option) *Error {
	return newError(KindNotAuthenticated,
		"Authentication credentials were not provided.", "not_authenticated",
		http.StatusUnauthorized, opts...)
}

// PermissionDenied builds the insufficient-rights exception.
func PermissionDenied(opts ...Option) *Error {
	return newError(KindPermissionDenied,
		"You do not have permission to perform this action.", "permission_denied",
		http.StatusForbidden, opts...)
}

// MethodNotAllowed builds the disallowed-method exception for the given
// HTTP method.
func MethodNotAllowed(method string, opts ...Option) *Error {
	return newError(KindMethodNotAllowed,
		fmt.Sprintf("Method %q not allowed.", method), "method_not_allowed",
		http.StatusMethodNotAllowed, opts...)
}

// NotAcceptable builds the failed-content-negotiation exception.
func NotAcceptable(opts ...Option) *Error {
	return newError(KindNotAcceptable,
		"Could not satisfy the request Accept header.", "not_acceptable",
		http.StatusNotAcceptable, opts...)
}

// UnsupportedMediaType builds the unsupported-body-type exception for the
// given media type.
func UnsupportedMediaType(mediaType string, opts ...Option) *Error {
	return newError(KindUnsupportedMediaType,
		fmt.Sprintf("Unsupported media type %q in request.", mediaType), "unsupported_media_type",
		http.StatusUnsupportedMediaType, opts...)
}

// NotFound builds the missing-resource exception.
func NotFound(opts ...Option) *Error {
	return newError(KindNotFound,
		"Not found.", "not_found",
		http.StatusNotFound, opts...)
}

// ParseError builds the malformed-request exception.
func ParseError(opts ...Option) *Error {
	return newError(KindParseError,
		"Malformed request.", "parse_error",
		http.StatusBadRequest, opts...)
}

// Throttled builds the rate-limited exception. When a wait is provided via
// WithWaitOption, the message states it and classification emits a
// Retry-After header; without a wait the message omits the clause and no
// header is emitted.
func Throttled(opts ...Option) *Error {
	e := newError(KindThrottled, "", "throttled",
		http.StatusTooManyRequests, opts...)
	if e.Message == "" {
		if e.HasWait {
			e = e.WithMessage(fmt.Sprintf(
				"Request was throttled. Expected available in %d seconds.", e.Wait))
		} else {
			e = e.WithMessage("Request was throttled.")
		}
	}
	return e
}

// ValidationError builds the failed-validation exception around a
// structured detail tree. A nil detail falls back to the single generic
// leaf ("Invalid input." / "invalid").
func ValidationError(detail *errtree.Node, opts ...Option) *Error {
	e := newError(KindValidation,
		"Invalid input.", "invalid",
		http.StatusBadRequest, opts...)
	if detail != nil {
		e = e.WithDetail(detail)
	}
	return e
}

// ProtectedObject builds the protected-relation exception. Its class-level
// default type is invalid_request. An empty msg keeps the canonical
// message.
func ProtectedObject(msg string, opts ...Option) *Error {
	if msg == "" {
		msg = "Requested operation cannot be completed because a related object is protected."
	}
	e := newError(KindProtectedObject, msg, "protected_error",
		http.StatusConflict, opts...)
	if e.DefaultType == taxonomy.Empty {
		cp := *e
		cp.DefaultType = taxonomy.InvalidRequest
		e = &cp
	}
	return e
}
