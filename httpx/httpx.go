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

// Package httpx adapts handled exceptions to net/http responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"envx.dev/enverr/handler"
)

// Writer is a thin adapter that turns exceptions into HTTP responses
// through a dispatch gate.
type Writer struct {
	Handler *handler.Handler
}

// Handle runs the gate for err and, when it is handled, writes the full
// response (status, headers, JSON envelope body). It reports whether the
// response was written; false means the gate bypassed the exception and the
// caller must produce its own response.
func (w Writer) Handle(rw http.ResponseWriter, r *http.Request, err error) bool {
	resp, ok := w.Handler.Handle(r.Context(), err)
	if !ok {
		return false
	}
	w.Write(rw, resp)
	return true
}

// Write serializes a handled response to the response writer. Extra headers
// resolved during classification (e.g. Retry-After) are set before the
// status line.
//
// No redaction or filtering is performed here: whatever the envelope
// contains is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, resp *handler.Response) {
	if resp == nil {
		return
	}

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	for k, v := range resp.Headers {
		h.Set(k, v)
	}
	rw.WriteHeader(resp.Status)

	// The envelope's field presence (nullable attr, omitted list) is
	// encoded in its struct tags; plain encoding/json renders it exactly.
	_ = json.NewEncoder(rw).Encode(resp.Body)
}
