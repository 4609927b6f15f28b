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
	"os"

	"envx.dev/enverr/classify"
	"envx.dev/enverr/envelope"
	"github.com/rs/zerolog"
)

// Option configures the Handler at build time. All options are applied to
// an internal builder and then frozen into an immutable Handler.
type Option func(*builder)

type builder struct {
	debug         bool
	enableInDebug bool

	classifier  *classify.Classifier
	classifyOpts []classify.Option

	assembler    *envelope.Assembler
	envelopeOpts []envelope.Option

	parsers []DetailParser

	reporter    Reporter
	reporterSet bool
	notifier    Notifier

	log zerolog.Logger
}

// newBuilder creates a builder pre-seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		log: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// WithDebug marks the process as running in debug mode. In debug mode,
// exceptions that are not taxonomy-recognized are bypassed (not handled)
// unless WithEnableInDebug is also set.
func WithDebug(enabled bool) Option {
	return func(b *builder) { b.debug = enabled }
}

// WithEnableInDebug forces handling even in debug mode.
func WithEnableInDebug(enabled bool) Option {
	return func(b *builder) { b.enableInDebug = enabled }
}

// WithClassifier installs a pre-built classifier. It takes precedence over
// WithClassifyOptions.
func WithClassifier(c *classify.Classifier) Option {
	return func(b *builder) { b.classifier = c }
}

// WithClassifyOptions forwards options to the classifier the handler
// builds. Ignored when WithClassifier is used.
func WithClassifyOptions(opts ...classify.Option) Option {
	return func(b *builder) { b.classifyOpts = append(b.classifyOpts, opts...) }
}

// WithAssembler installs a pre-built assembler. It takes precedence over
// WithEnvelopeOptions.
func WithAssembler(a *envelope.Assembler) Option {
	return func(b *builder) { b.assembler = a }
}

// WithEnvelopeOptions forwards options to the assembler the handler
// builds. Ignored when WithAssembler is used.
func WithEnvelopeOptions(opts ...envelope.Option) Option {
	return func(b *builder) { b.envelopeOpts = append(b.envelopeOpts, opts...) }
}

// WithDetailParser appends a detail parser to the chain. Caller parsers run
// after the built-ins, in registration order.
func WithDetailParser(p DetailParser) Option {
	return func(b *builder) { b.parsers = append(b.parsers, p) }
}

// WithReporter replaces the reporting hook. Passing nil disables reporting
// entirely.
func WithReporter(r Reporter) Option {
	return func(b *builder) {
		b.reporter = r
		b.reporterSet = true
	}
}

// WithNotifier installs the bypass pass-through hook.
func WithNotifier(n Notifier) Option {
	return func(b *builder) { b.notifier = n }
}

// WithLogger replaces the logger used by the default reporter and the
// reporter panic recovery.
func WithLogger(log zerolog.Logger) Option {
	return func(b *builder) { b.log = log }
}
