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

// Package classify maps an arbitrary exception-like value to a taxonomy
// type, an HTTP status, and optional headers and extra data.
//
// Classification is an ordered chain: a pre-classification remap step first
// translates framework-native errors (missing resource, permission failure,
// protected relation) into their taxonomy-recognized equivalents; then the
// per-instance override, the class-level default, the built-in kind table,
// and any caller-registered matchers are consulted in that order. The first
// tier to produce a type wins; anything unmatched classifies as
// server_error with a fixed, non-leaking detail downstream.
//
// A Classifier is built once via New and is immutable afterwards, so it can
// be shared across requests without locking.
package classify
