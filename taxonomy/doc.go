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

// Package taxonomy provides parsing, normalization and validation for the
// error taxonomy exposed to API consumers.
//
// A "type" is the top-level, machine-readable classification of a failed
// request, such as "validation_error", "authentication_error" or
// "server_error". Types are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for switching on client side.
//
// This package defines the canonical representation, the built-in constants,
// and the functions that convert arbitrary user input to canonical form.
// Custom taxonomy types are allowed as long as they pass Validate.
package taxonomy
