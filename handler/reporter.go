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
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultReporter returns the built-in reporting hook: recognized API
// exceptions are expected failures and are not reported; anything else is
// logged at error level with a fresh event identifier, which is returned so
// the handler can merge it into the envelope.
//
// Swap it out via WithReporter to ship exceptions to an APM instead.
func DefaultReporter(log zerolog.Logger) Reporter {
	return func(ctx context.Context, err error) string {
		var apiErr *enverr.Error
		if errors.As(err, &apiErr) {
			return ""
		}

		id := uuid.NewString()
		log.Error().
			Ctx(ctx).
			Err(err).
			Str("event_id", id).
			Msg("unhandled exception")
		return id
	}
}
