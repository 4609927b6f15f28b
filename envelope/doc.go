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

// Package envelope assembles the structured error body returned to API
// consumers.
//
// The wire shape is field-stable:
//
//	Single:   { "type", "code", "detail", "attr", "extra"? }
//	Multiple: { "type": "multiple", "code": "multiple", "detail": <fixed>,
//	            "attr": null, "extra"?, "list": [ {type, code, detail, attr}, ... ] }
//
// The assembler applies the code override rule (invalid -> invalid_input),
// joins record paths into the attr string with a configurable separator,
// and renders attr as explicit null for object-level errors (empty path, or
// a fully joined path equal to one of the reserved keys).
package envelope
