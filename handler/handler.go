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

	"envx.dev/enverr"
	"envx.dev/enverr/classify"
	"envx.dev/enverr/envelope"
	"envx.dev/enverr/errtree"
	"github.com/rs/zerolog"
)

// Reporter is the pluggable exception-reporting hook. It may return an
// opaque event identifier (e.g. from an APM); a non-empty identifier is
// merged into the envelope. Reporting is best-effort: a panicking reporter
// is recovered and never prevents envelope construction.
type Reporter func(ctx context.Context, err error) string

// Notifier is the pass-through hook invoked when the gate bypasses an
// exception in debug mode, so the surrounding framework can run its own
// unhandled-error reporting.
type Notifier func(ctx context.Context, err error)

// Response is the complete outcome of handling an exception: the HTTP
// status to answer with, response headers to set, and the envelope body.
type Response struct {
	Status  int
	Headers map[string]string
	Body    envelope.Envelope
}

// Handler is the dispatch gate. It decides whether an exception should be
// handled at all and, if so, runs the full pipeline: remap, report,
// classify, extract detail, normalize, assemble.
//
// A Handler is immutable after New and safe for concurrent use: every
// invocation is an independent transformation over the snapshot
// configuration.
type Handler struct {
	debug         bool
	enableInDebug bool

	classifier *classify.Classifier
	assembler  *envelope.Assembler
	parsers    []DetailParser

	reporter Reporter
	notifier Notifier
	log      zerolog.Logger
}

// New constructs a Handler from options. Unless overridden, it builds a
// default classifier and assembler, installs the built-in detail parsers,
// and wires the default zerolog reporter.
func New(opts ...Option) (*Handler, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	h := &Handler{
		debug:         b.debug,
		enableInDebug: b.enableInDebug,
		classifier:    b.classifier,
		assembler:     b.assembler,
		notifier:      b.notifier,
		log:           b.log,
	}

	if h.classifier == nil {
		c, err := classify.New(b.classifyOpts...)
		if err != nil {
			return nil, err
		}
		h.classifier = c
	}
	if h.assembler == nil {
		h.assembler = envelope.New(b.envelopeOpts...)
	}

	// Built-in parsers first, caller-registered ones after; first match
	// wins.
	h.parsers = append(defaultParsers(), b.parsers...)

	if b.reporterSet {
		h.reporter = b.reporter
	} else {
		h.reporter = DefaultReporter(h.log)
	}

	return h, nil
}

// Handle runs the dispatch gate for one exception.
//
// It returns (nil, false) — "not handled" — when err is nil, or when the
// debug bypass applies: debug mode active, the enable-in-debug override
// inactive, and the (remapped) exception not a recognized API exception. In
// the bypass case the notifier is invoked so the surrounding framework can
// do its own unhandled-error reporting.
//
// Otherwise it returns the assembled response and true.
func (h *Handler) Handle(ctx context.Context, err error) (*Response, bool) {
	if err == nil {
		return nil, false
	}

	// Remap before the gate: a framework-native "not found" must count as
	// recognized even in debug mode.
	err = h.classifier.Remap(err)

	var apiErr *enverr.Error
	recognized := errors.As(err, &apiErr)

	if h.debug && !h.enableInDebug && !recognized {
		if h.notifier != nil {
			h.notifier(ctx, err)
		}
		return nil, false
	}

	eventID := h.report(ctx, err)

	cls := h.classifier.Classify(err)
	records := errtree.Normalize(h.parseDetail(err), nil)

	body := h.assembler.Assemble(cls, records)
	body.EventID = eventID

	return &Response{
		Status:  cls.HTTPStatus,
		Headers: cls.Headers,
		Body:    body,
	}, true
}

// report invokes the reporting hook, recovering panics: reporting is a side
// channel and must never prevent envelope construction.
func (h *Handler) report(ctx context.Context, err error) (eventID string) {
	if h.reporter == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().
				Interface("panic", r).
				Msg("exception reporter panicked")
			eventID = ""
		}
	}()
	return h.reporter(ctx, err)
}

// parseDetail runs the detail-parser chain; nil means "no structured
// detail", which normalizes to the default server-error record.
func (h *Handler) parseDetail(err error) *errtree.Node {
	for _, p := range h.parsers {
		if p.Match(err) {
			return p.Parse(err)
		}
	}
	return nil
}
