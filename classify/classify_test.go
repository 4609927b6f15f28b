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
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"envx.dev/enverr"
	"envx.dev/enverr/taxonomy"
)

func mustNew(t *testing.T, opts ...Option) *Classifier {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClassify_KindTable(t *testing.T) {
	c := mustNew(t)

	tests := []struct {
		name string
		err  error
		want taxonomy.Type
	}{
		{"authentication failed", enverr.AuthenticationFailed(), taxonomy.AuthenticationError},
		{"not authenticated", enverr.NotAuthenticated(), taxonomy.AuthenticationError},
		{"permission denied", enverr.PermissionDenied(), taxonomy.AuthenticationError},
		{"method not allowed", enverr.MethodNotAllowed("PUT"), taxonomy.InvalidRequest},
		{"not acceptable", enverr.NotAcceptable(), taxonomy.InvalidRequest},
		{"unsupported media type", enverr.UnsupportedMediaType("application/xml"), taxonomy.InvalidRequest},
		{"not found", enverr.NotFound(), taxonomy.InvalidRequest},
		{"parse error", enverr.ParseError(), taxonomy.InvalidRequest},
		{"throttled", enverr.Throttled(), taxonomy.ThrottledError},
		{"validation", enverr.ValidationError(nil), taxonomy.ValidationError},
		{"server error", enverr.ServerError(), taxonomy.ServerError},
		{"unknown error", errors.New("boom"), taxonomy.ServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.err)
			if got.Type != tt.want.String() {
				t.Fatalf("Classify(%v).Type = %q, want %q", tt.err, got.Type, tt.want)
			}
		})
	}
}

func TestClassify_InstanceOverrideWinsOverEverything(t *testing.T) {
	c := mustNew(t)

	e := enverr.NotFound(enverr.WithTypeOption(taxonomy.Type("payment_required")))
	got := c.Classify(e)
	if got.Type != "payment_required" {
		t.Fatalf("instance override must win; got %q", got.Type)
	}
}

func TestClassify_ClassDefaultBeatsKindTable(t *testing.T) {
	c := mustNew(t)

	// ProtectedObject has no kind-table row but declares a class default.
	got := c.Classify(enverr.ProtectedObject(""))
	if got.Type != taxonomy.InvalidRequest.String() {
		t.Fatalf("class default must apply; got %q", got.Type)
	}
	if got.HTTPStatus != 409 {
		t.Fatalf("status = %d, want 409", got.HTTPStatus)
	}
}

func TestClassify_StatusDefaultsTo500(t *testing.T) {
	c := mustNew(t)

	got := c.Classify(errors.New("boom"))
	if got.HTTPStatus != 500 {
		t.Fatalf("status = %d, want 500", got.HTTPStatus)
	}
	if got.Type != taxonomy.ServerError.String() {
		t.Fatalf("type = %q, want server_error", got.Type)
	}
	if got.Headers != nil || got.Extra != nil {
		t.Fatalf("bare error must yield no headers/extra: %+v", got)
	}
}

func TestClassify_ThrottleHeaders(t *testing.T) {
	c := mustNew(t)

	waited := c.Classify(enverr.Throttled(enverr.WithWaitOption(100)))
	if waited.Headers[RetryAfterHeader] != "100" {
		t.Fatalf("Retry-After = %q, want %q", waited.Headers[RetryAfterHeader], "100")
	}

	plain := c.Classify(enverr.Throttled())
	if _, ok := plain.Headers[RetryAfterHeader]; ok {
		t.Fatal("throttle without wait must emit no retry header")
	}
}

func TestClassify_ExtraPassthrough(t *testing.T) {
	c := mustNew(t)

	extra := map[string]any{"account": "acct_42"}
	got := c.Classify(enverr.ValidationError(nil, enverr.WithExtraOption(extra)))
	if got.Extra["account"] != "acct_42" {
		t.Fatalf("extra not passed through: %+v", got.Extra)
	}
}

func TestRemap_BuiltinSentinels(t *testing.T) {
	c := mustNew(t)

	tests := []struct {
		name string
		err  error
		kind enverr.Kind
	}{
		{"os not-exist", fmt.Errorf("open: %w", os.ErrNotExist), enverr.KindNotFound},
		{"sql no rows", fmt.Errorf("lookup: %w", sql.ErrNoRows), enverr.KindNotFound},
		{"os permission", fmt.Errorf("write: %w", os.ErrPermission), enverr.KindPermissionDenied},
		{"protected relation", fmt.Errorf("delete: %w", enverr.ErrProtectedRelation), enverr.KindProtectedObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Remap(tt.err)
			var e *enverr.Error
			if !errors.As(out, &e) {
				t.Fatalf("Remap(%v) = %v, want *enverr.Error", tt.err, out)
			}
			if e.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", e.Kind, tt.kind)
			}
		})
	}

	// Unrecognized errors pass through unchanged.
	plain := errors.New("boom")
	if c.Remap(plain) != plain {
		t.Fatal("unrecognized error must pass through")
	}
}

func TestWithRemap_RunsAfterBuiltins(t *testing.T) {
	custom := errors.New("tenant suspended")
	c := mustNew(t, WithRemap(func(err error) (error, bool) {
		if errors.Is(err, custom) {
			return enverr.PermissionDenied(), true
		}
		return nil, false
	}))

	out := c.Remap(custom)
	var e *enverr.Error
	if !errors.As(out, &e) || e.Kind != enverr.KindPermissionDenied {
		t.Fatalf("custom remap not applied: %v", out)
	}
}

func TestWithMatcher_EvaluatedAfterBuiltinsInOrder(t *testing.T) {
	sentinel := errors.New("quota blown")

	first := func(err error) (taxonomy.Type, bool) {
		if errors.Is(err, sentinel) {
			return taxonomy.Type("quota_error"), true
		}
		return taxonomy.Empty, false
	}
	second := func(err error) (taxonomy.Type, bool) {
		if errors.Is(err, sentinel) {
			return taxonomy.Type("never_wins"), true
		}
		return taxonomy.Empty, false
	}

	c := mustNew(t, WithMatcher(first), WithMatcher(second))

	// Built-ins still win for recognized kinds.
	if got := c.Classify(enverr.Throttled()); got.Type != taxonomy.ThrottledError.String() {
		t.Fatalf("built-in matcher must run first; got %q", got.Type)
	}

	// Registration order decides among extras.
	if got := c.Classify(sentinel); got.Type != "quota_error" {
		t.Fatalf("first registered matcher must win; got %q", got.Type)
	}
}

func TestNew_RejectsNilLinks(t *testing.T) {
	if _, err := New(WithMatcher(nil)); err == nil {
		t.Fatal("nil matcher must be rejected")
	}
	if _, err := New(WithRemap(nil)); err == nil {
		t.Fatal("nil remap must be rejected")
	}
}
