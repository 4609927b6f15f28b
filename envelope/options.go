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

package envelope

// Option configures the Assembler at build time. All options are applied
// to an internal builder and then frozen into an immutable Assembler.
type Option func(*builder)

type builder struct {
	separator   string
	catchAllKey string
	nonFieldKey string
	multiple    bool
}

// newBuilder creates a builder pre-seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		separator:   DefaultSeparator,
		catchAllKey: DefaultCatchAllKey,
		nonFieldKey: DefaultNonFieldKey,
	}
}

// WithSeparator replaces the string that joins path segments into attr.
func WithSeparator(sep string) Option {
	return func(b *builder) { b.separator = sep }
}

// WithCatchAllKey replaces the reserved catch-all key that denotes an
// object-level error.
func WithCatchAllKey(key string) Option {
	return func(b *builder) { b.catchAllKey = key }
}

// WithNonFieldKey replaces the reserved non-field-errors key that denotes
// an object-level error.
func WithNonFieldKey(key string) Option {
	return func(b *builder) { b.nonFieldKey = key }
}

// WithMultipleSupport toggles the multi-error envelope. Off by default;
// even when on, it only activates when more than one normalized record
// exists.
func WithMultipleSupport(enabled bool) Option {
	return func(b *builder) { b.multiple = enabled }
}
