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

// Package handler is the dispatch gate of enverr: it decides whether an
// exception should be handled at all and, if so, turns it into a complete
// response (envelope body, HTTP status, headers).
//
// Data flows one direction through a single Handle call:
//
//	raw error -> remap -> debug gate -> reporting hook ->
//	classification | detail extraction -> normalization -> assembly
//
// Each invocation is an independent, synchronous transformation; the only
// shared state is the immutable configuration captured at New, so a Handler
// can serve concurrent requests without locking. The reporting hook is the
// sole side effect and is fire-and-forget from the handler's perspective —
// a panicking hook is recovered and logged, never surfaced.
package handler
