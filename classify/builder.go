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

type builder struct {
	// remaps is the pre-classification remap chain, built-ins first.
	remaps []Remap

	// matchers is the classification chain, built-ins first. Caller
	// options append to it; order is preserved into the snapshot.
	matchers []Matcher
}

// newBuilder creates a builder pre-seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		remaps:   defaultRemaps(),
		matchers: defaultMatchers(),
	}
}
