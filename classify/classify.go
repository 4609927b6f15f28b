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

package classify

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"envx.dev/enverr/apis"
	"envx.dev/enverr/taxonomy"
)

// RetryAfterHeader is the response header emitted for throttles that know
// their wait time.
const RetryAfterHeader = "Retry-After"

// Matcher is one link of the classification chain: a pure function from an
// exception value to an optional taxonomy type. Returning ok=false passes
// the exception to the next link.
type Matcher func(err error) (taxonomy.Type, bool)

// Remap is one link of the pre-classification remap chain. It translates a
// framework-native error into its taxonomy-recognized equivalent. Returning
// ok=false passes the error to the next link unchanged.
type Remap func(err error) (error, bool)

// New constructs an immutable Classifier snapshot.
//
// The resulting Classifier is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to user-provided slices remain.
//
// Build process overview:
//
//  1. Seed the builder with the built-in remaps and the built-in kind
//     matcher.
//  2. Apply user-provided options; extra matchers and remaps are appended
//     AFTER the built-ins, and their registration order is preserved —
//     first match wins, so order is a load-bearing contract.
//  3. Freeze the chains into fresh slices.
func New(opts ...Option) (*Classifier, error) {
	b := newBuilder()

	for _, opt := range opts {
		opt(b)
	}

	for i, m := range b.matchers {
		if m == nil {
			return nil, fmt.Errorf("classify: matcher %d is nil", i)
		}
	}
	for i, r := range b.remaps {
		if r == nil {
			return nil, fmt.Errorf("classify: remap %d is nil", i)
		}
	}

	c := &Classifier{
		remaps:   freezeRemaps(b.remaps),
		matchers: freezeMatchers(b.matchers),
	}
	return c, nil
}

// Classifier resolves an exception-like value into a taxonomy type, an HTTP
// status, response headers and the pass-through extra payload. It is
// immutable and safe for concurrent use once constructed.
type Classifier struct {
	// remaps translate framework-native errors into taxonomy equivalents
	// before any classification happens.
	remaps []Remap

	// matchers are evaluated in registration order, first match wins.
	// Built-ins come first, caller-supplied matchers after.
	matchers []Matcher
}

// Remap runs the pre-classification remap chain. The first remap that
// recognizes the error wins; an unrecognized error is returned unchanged.
//
// Callers are expected to remap before the dispatch gate so that a
// framework-native "not found" is treated as a recognized exception even in
// debug mode.
func (c *Classifier) Remap(err error) error {
	for _, r := range c.remaps {
		if out, ok := r(err); ok {
			return out
		}
	}
	return err
}

// Classify resolves the classification for an (already remapped) exception.
//
// Type resolution order (highest to lowest):
//
//  1. per-instance override (apis.TypedError);
//  2. class-level default (apis.DefaultTypedError);
//  3. the matcher chain, in registration order;
//  4. server_error.
//
// Status comes from apis.StatusedError when present (0 means unspecified)
// and defaults to 500. A Retry-After header is emitted only when the
// exception reports a wait. The extra payload is passed through unmodified.
func (c *Classifier) Classify(err error) apis.Classified {
	cls := apis.Classified{
		Type:       c.resolveType(err).String(),
		HTTPStatus: http.StatusInternalServerError,
	}

	var se apis.StatusedError
	if errors.As(err, &se) {
		if s := se.HTTPStatus(); s != 0 {
			cls.HTTPStatus = s
		}
	}

	var we apis.WaitingError
	if errors.As(err, &we) {
		if wait, ok := we.RetryWait(); ok {
			cls.Headers = map[string]string{RetryAfterHeader: strconv.Itoa(wait)}
		}
	}

	var xe apis.ExtraError
	if errors.As(err, &xe) {
		if extra := xe.ErrorExtra(); len(extra) > 0 {
			cls.Extra = extra
		}
	}

	return cls
}

func (c *Classifier) resolveType(err error) taxonomy.Type {
	var te apis.TypedError
	if errors.As(err, &te) {
		if t, ok := te.ExceptionType(); ok {
			return taxonomy.Type(t)
		}
	}

	var de apis.DefaultTypedError
	if errors.As(err, &de) {
		if t, ok := de.DefaultExceptionType(); ok {
			return taxonomy.Type(t)
		}
	}

	for _, m := range c.matchers {
		if t, ok := m(err); ok {
			return t
		}
	}

	// Couldn't determine type, default to the generic error. Never leak
	// anything about the unmatched exception here.
	return taxonomy.ServerError
}

// freezeMatchers makes an immutable copy of the matcher chain. Used when
// finalizing the classifier so later mutations to the builder cannot affect
// it.
func freezeMatchers(src []Matcher) []Matcher {
	dst := make([]Matcher, len(src))
	copy(dst, src)
	return dst
}

// freezeRemaps makes an immutable copy of the remap chain.
func freezeRemaps(src []Remap) []Remap {
	dst := make([]Remap, len(src))
	copy(dst, src)
	return dst
}
