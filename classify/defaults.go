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

import (
	"database/sql"
	"errors"
	"os"

	"envx.dev/enverr"
	"envx.dev/enverr/taxonomy"
)

// defaultRemaps returns the built-in pre-classification remap chain.
//
// These cover the common framework- and storage-native errors that have
// direct taxonomy equivalents: missing resources, permission failures, and
// deletes blocked by protected relations. Custom frameworks register their
// own remaps via WithRemap; those run after these.
func defaultRemaps() []Remap {
	return []Remap{
		func(err error) (error, bool) {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, sql.ErrNoRows) {
				return enverr.NotFound(), true
			}
			return nil, false
		},
		func(err error) (error, bool) {
			if errors.Is(err, os.ErrPermission) {
				return enverr.PermissionDenied(), true
			}
			return nil, false
		},
		func(err error) (error, bool) {
			if errors.Is(err, enverr.ErrProtectedRelation) {
				return enverr.ProtectedObject(""), true
			}
			return nil, false
		},
	}
}

// defaultMatchers returns the built-in classification chain: the fixed
// kind-to-taxonomy table.
func defaultMatchers() []Matcher {
	return []Matcher{matchByKind}
}

// matchByKind implements the fixed table over recognized exception kinds.
// Kinds without a table row (server error, protected object) fall through:
// protected objects resolve via their class-level default type, and
// everything else lands on the server_error fallback.
func matchByKind(err error) (taxonomy.Type, bool) {
	var e *enverr.Error
	if !errors.As(err, &e) {
		return taxonomy.Empty, false
	}

	switch e.Kind {
	case enverr.KindAuthenticationFailed,
		enverr.KindNotAuthenticated,
		enverr.KindPermissionDenied:
		return taxonomy.AuthenticationError, true

	case enverr.KindMethodNotAllowed,
		enverr.KindNotAcceptable,
		enverr.KindUnsupportedMediaType,
		enverr.KindNotFound,
		enverr.KindParseError:
		return taxonomy.InvalidRequest, true

	case enverr.KindThrottled:
		return taxonomy.ThrottledError, true

	case enverr.KindValidation:
		return taxonomy.ValidationError, true
	}

	return taxonomy.Empty, false
}
