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

// Option configures the Classifier at build time. All options are applied
// to an internal builder and then frozen into an immutable Classifier.
type Option func(*builder)

// WithMatcher appends a matcher to the classification chain. Matchers are
// evaluated after the built-ins, in the order they were registered; the
// first one to return ok wins.
func WithMatcher(m Matcher) Option {
	return func(b *builder) { b.matchers = append(b.matchers, m) }
}

// WithRemap appends a remap to the pre-classification chain. Remaps are
// evaluated after the built-ins, in the order they were registered; the
// first one to recognize the error wins.
func WithRemap(r Remap) Option {
	return func(b *builder) { b.remaps = append(b.remaps, r) }
}
