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
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"envx.dev/enverr"
	"envx.dev/enverr/envelope"
	"envx.dev/enverr/errtree"
)

func mustHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()
	// Reporting is disabled by default in tests; cases that need it
	// install their own reporter.
	h, err := New(append([]Option{WithReporter(nil)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func mustHandle(t *testing.T, h *Handler, err error) *Response {
	t.Helper()
	resp, ok := h.Handle(context.Background(), err)
	if !ok || resp == nil {
		t.Fatalf("Handle(%v) not handled", err)
	}
	return resp
}

func attrString(a *string) string {
	if a == nil {
		return "<null>"
	}
	return *a
}

func checkEnvelope(t *testing.T, env envelope.Envelope, typ, code, detail string, attr *string) {
	t.Helper()
	if env.Type != typ {
		t.Fatalf("type = %q, want %q", env.Type, typ)
	}
	if env.Code != code {
		t.Fatalf("code = %q, want %q", env.Code, code)
	}
	if env.Detail != detail {
		t.Fatalf("detail = %q, want %q", env.Detail, detail)
	}
	if (env.Attr == nil) != (attr == nil) {
		t.Fatalf("attr = %s, want %s", attrString(env.Attr), attrString(attr))
	}
	if attr != nil && *env.Attr != *attr {
		t.Fatalf("attr = %q, want %q", *env.Attr, *attr)
	}
}

func strptr(s string) *string { return &s }

func TestHandle_NotAcceptable(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.NotAcceptable())

	if resp.Status != 406 {
		t.Fatalf("status = %d, want 406", resp.Status)
	}
	checkEnvelope(t, resp.Body, "invalid_request", "not_acceptable",
		"Could not satisfy the request Accept header.", nil)
}

func TestHandle_UnsupportedMediaType(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.UnsupportedMediaType("application/xml"))

	if resp.Status != 415 {
		t.Fatalf("status = %d, want 415", resp.Status)
	}
	checkEnvelope(t, resp.Body, "invalid_request", "unsupported_media_type",
		`Unsupported media type "application/xml" in request.`, nil)
}

func TestHandle_ThrottledWithWait(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.Throttled(enverr.WithWaitOption(100)))

	if resp.Status != 429 {
		t.Fatalf("status = %d, want 429", resp.Status)
	}
	checkEnvelope(t, resp.Body, "throttled_error", "throttled",
		"Request was throttled. Expected available in 100 seconds.", nil)
	if resp.Headers["Retry-After"] != "100" {
		t.Fatalf("Retry-After = %q, want %q", resp.Headers["Retry-After"], "100")
	}
}

func TestHandle_ThrottledWithoutWait(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.Throttled())

	checkEnvelope(t, resp.Body, "throttled_error", "throttled",
		"Request was throttled.", nil)
	if _, ok := resp.Headers["Retry-After"]; ok {
		t.Fatal("no Retry-After expected without a wait")
	}
}

func TestHandle_ValidationError_DefaultCodeRewritten(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.ValidationError(nil,
		enverr.WithMessageOption("I did not like your input.")))

	if resp.Status != 400 {
		t.Fatalf("status = %d, want 400", resp.Status)
	}
	checkEnvelope(t, resp.Body, "validation_error", "invalid_input",
		"I did not like your input.", nil)
}

func TestHandle_ValidationError_CustomCodePassesThrough(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.ValidationError(nil,
		enverr.WithMessageOption("I did not like your input."),
		enverr.WithCodeOption("ugly_input")))

	checkEnvelope(t, resp.Body, "validation_error", "ugly_input",
		"I did not like your input.", nil)
}

func TestHandle_ValidationError_FieldAttr(t *testing.T) {
	h := mustHandler(t)
	tree := errtree.Nested(
		errtree.Field("form", errtree.Nested(
			errtree.Field("email", errtree.Flat(
				errtree.Leaf{Message: "This field is required.", Code: "required"},
			)),
		)),
	)
	resp := mustHandle(t, h, enverr.ValidationError(tree))

	checkEnvelope(t, resp.Body, "validation_error", "required",
		"This field is required.", strptr("form__email"))
}

func TestHandle_NotFound_AndRemappedSentinel(t *testing.T) {
	h := mustHandler(t)

	want := func(resp *Response) {
		t.Helper()
		if resp.Status != 404 {
			t.Fatalf("status = %d, want 404", resp.Status)
		}
		checkEnvelope(t, resp.Body, "invalid_request", "not_found", "Not found.", nil)
	}

	want(mustHandle(t, h, enverr.NotFound()))
	// Framework-native miss remaps to the same envelope.
	want(mustHandle(t, h, fmt.Errorf("load user: %w", os.ErrNotExist)))
}

func TestHandle_ProtectedRelation(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, fmt.Errorf("delete team: %w", enverr.ErrProtectedRelation))

	if resp.Status != 409 {
		t.Fatalf("status = %d, want 409", resp.Status)
	}
	checkEnvelope(t, resp.Body, "invalid_request", "protected_error",
		"Requested operation cannot be completed because a related object is protected.", nil)
}

func TestHandle_UnknownError_FixedServerEnvelope(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, errors.New("pq: connection refused"))

	if resp.Status != 500 {
		t.Fatalf("status = %d, want 500", resp.Status)
	}
	// The internal error text must never leak.
	checkEnvelope(t, resp.Body, "server_error", "error", "A server error occurred.", nil)
}

func TestHandle_ExtraPassedThrough(t *testing.T) {
	h := mustHandler(t)
	resp := mustHandle(t, h, enverr.ValidationError(nil,
		enverr.WithExtraOption(map[string]any{"docs": "https://example.com/errors"})))

	if resp.Body.Extra["docs"] != "https://example.com/errors" {
		t.Fatalf("extra missing: %+v", resp.Body.Extra)
	}
}

func TestHandle_MultipleMode(t *testing.T) {
	h := mustHandler(t, WithEnvelopeOptions(envelope.WithMultipleSupport(true)))

	tree := errtree.Nested(
		errtree.Field("email", errtree.Flat(
			errtree.Leaf{Message: "This field is required.", Code: "required"},
		)),
		errtree.Field("password", errtree.Flat(
			errtree.Leaf{Message: "This password is unsafe.", Code: "unsafe_password"},
		)),
	)
	resp := mustHandle(t, h, enverr.ValidationError(tree))

	checkEnvelope(t, resp.Body, "multiple", "multiple", envelope.MultipleDetail, nil)
	if len(resp.Body.List) != 2 {
		t.Fatalf("want 2 entries, got %d", len(resp.Body.List))
	}
	if resp.Body.List[0].Code != "required" || *resp.Body.List[0].Attr != "email" {
		t.Fatalf("entry 0: %+v", resp.Body.List[0])
	}
	if resp.Body.List[1].Code != "unsafe_password" || *resp.Body.List[1].Attr != "password" {
		t.Fatalf("entry 1: %+v", resp.Body.List[1])
	}
	for i, e := range resp.Body.List {
		if e.Type != "validation_error" {
			t.Fatalf("entry %d type = %q", i, e.Type)
		}
	}
}

func TestHandle_DebugBypass(t *testing.T) {
	var notified error
	h := mustHandler(t,
		WithDebug(true),
		WithNotifier(func(ctx context.Context, err error) { notified = err }),
	)

	// Non-recognized exception: bypassed, notifier invoked.
	boom := errors.New("boom")
	if resp, ok := h.Handle(context.Background(), boom); ok || resp != nil {
		t.Fatal("debug bypass must not handle")
	}
	if notified == nil {
		t.Fatal("notifier must receive the bypassed exception")
	}

	// Recognized exceptions are still handled in debug mode.
	resp := mustHandle(t, h, enverr.NotFound())
	if resp.Status != 404 {
		t.Fatalf("status = %d, want 404", resp.Status)
	}
}

func TestHandle_EnableInDebugOverride(t *testing.T) {
	h := mustHandler(t, WithDebug(true), WithEnableInDebug(true))

	resp := mustHandle(t, h, errors.New("boom"))
	if resp.Status != 500 {
		t.Fatalf("status = %d, want 500", resp.Status)
	}
	checkEnvelope(t, resp.Body, "server_error", "error", "A server error occurred.", nil)
}

func TestHandle_NilError(t *testing.T) {
	h := mustHandler(t)
	if resp, ok := h.Handle(context.Background(), nil); ok || resp != nil {
		t.Fatal("nil error must not be handled")
	}
}

func TestHandle_ReporterEventIDMergedIntoEnvelope(t *testing.T) {
	h := mustHandler(t, WithReporter(func(ctx context.Context, err error) string {
		return "evt_123"
	}))

	resp := mustHandle(t, h, errors.New("boom"))
	if resp.Body.EventID != "evt_123" {
		t.Fatalf("event_id = %q, want evt_123", resp.Body.EventID)
	}
}

func TestHandle_PanickingReporterDoesNotPreventEnvelope(t *testing.T) {
	h := mustHandler(t, WithReporter(func(ctx context.Context, err error) string {
		panic("apm down")
	}))

	resp := mustHandle(t, h, errors.New("boom"))
	checkEnvelope(t, resp.Body, "server_error", "error", "A server error occurred.", nil)
	if resp.Body.EventID != "" {
		t.Fatalf("panicking reporter must yield no event id, got %q", resp.Body.EventID)
	}
}

func TestHandle_CustomDetailParser(t *testing.T) {
	h := mustHandler(t, WithDetailParser(quotaParser{}))

	resp := mustHandle(t, h, quotaError{})
	checkEnvelope(t, resp.Body, "server_error", "quota_exceeded",
		"Storage quota exceeded.", strptr("storage"))
}

type quotaError struct{}

func (quotaError) Error() string { return "quota exceeded" }

type quotaParser struct{}

func (quotaParser) Match(err error) bool {
	var qe quotaError
	return errors.As(err, &qe)
}

func (quotaParser) Parse(err error) *errtree.Node {
	return errtree.Nested(errtree.Field("storage", errtree.Flat(
		errtree.Leaf{Message: "Storage quota exceeded.", Code: "quota_exceeded"},
	)))
}

func TestHandle_ConcurrentUse(t *testing.T) {
	h := mustHandler(t, WithEnvelopeOptions(envelope.WithMultipleSupport(true)))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = enverr.Throttled(enverr.WithWaitOption(i + 1))
			} else {
				err = enverr.ValidationError(nil)
			}
			resp, ok := h.Handle(context.Background(), err)
			if !ok || resp == nil {
				t.Errorf("iteration %d not handled", i)
			}
		}(i)
	}
	wg.Wait()
}
