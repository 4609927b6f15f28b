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

package taxonomy

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Type is the canonical, validated representation of a taxonomy type.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// Custom types are supported: an exception may carry any value that passes
// validation, not only the built-in constants declared in types.go.
type Type string

// MinLength and MaxLength define the allowed length range for a canonical
// taxonomy type.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid type.
	// We require at least 3 characters so that ultra-short and ambiguous
	// identifiers like "a" or "x1" are not accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid type.
	// 64 characters is enough for descriptive types like
	// "authentication_error" while still preventing unbounded or accidental
	// long strings.
	MaxLength = 64
)

const (
	// typeFmt is the canonical regular expression used to validate taxonomy
	// types.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes the
	//	                  total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern as well.
	typeFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// typeRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical taxonomy type.
	//
	// We precompile it so that repeated validations do not pay the
	// compilation cost over and over again.
	//
	// Examples of valid types:
	//   - "validation_error"
	//   - "server_error"
	//   - "multiple"
	//
	// Examples of invalid types:
	//   - "Validation"      (uppercase)
	//   - "server-error"    (dash instead of underscore)
	//   - "x"               (too short)
	//   - "1error"          (does not start with a letter)
	typeRe = regexp.MustCompile(typeFmt)
)

var (
	// ErrTypeInvalid is returned when a value cannot be parsed or validated
	// as a taxonomy type.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about type format" vs "this is some other error".
	ErrTypeInvalid = errors.New("taxonomy: invalid type")
)

// Ensure Type implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Type)(nil)
	_ encoding.TextUnmarshaler = (*Type)(nil)
)

// Empty is the zero-value type. It is considered "not provided" and is valid
// to store as an optional field on an exception value. Callers that require a
// non-empty, canonical type should explicitly call Validate.
var Empty Type = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Type value.
func Parse(s string) (Type, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Type(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical type form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Type is valid.
// The empty type ("") is considered invalid.
func Validate(t Type) error {
	return validate(string(t))
}

// String returns the canonical string representation of the type.
//
// This is the single serialization point for the taxonomy: envelope
// construction calls String() exactly once when rendering the "type" field,
// so enum-to-string coercion never needs to happen anywhere else.
func (t Type) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (t Type) MarshalText() ([]byte, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (t *Type) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid type.
func validate(s string) error {
	if !typeRe.MatchString(s) {
		return ErrTypeInvalid
	}
	return nil
}
