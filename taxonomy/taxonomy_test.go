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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  server_error  ", "server_error"},
		{"to lower", "VaLiDaTiOn_ErRoR", "validation_error"},
		{"dash to underscore", "invalid-request", "invalid_request"},
		{"mixed", "  THROTTLED-ERROR  ", "throttled_error"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Type
	}{
		{"simple", "server_error", Type("server_error")},
		{"with spaces", "  validation_error  ", Type("validation_error")},
		{"upper", "MULTIPLE", Type("multiple")},
		{"dash", "invalid-request", Type("invalid_request")},
		{"custom", "payment_required", Type("payment_required")},
		{"min length", "abc", Type("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1error"},
		{"contains dash after normalize", "x-"},
		{"only dash", "-"},
		{"too long", "a_very_long_type_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Type{
		AuthenticationError,
		InvalidRequest,
		ServerError,
		ThrottledError,
		ValidationError,
		Multiple,
		"custom_type",
	}
	for _, typ := range valid {
		if err := Validate(typ); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", typ, err)
		}
	}

	invalid := []Type{
		"",             // empty
		"ab",           // too short
		"Server",       // uppercase
		"server-error", // dash
	}
	for _, typ := range invalid {
		if err := Validate(typ); err == nil {
			t.Fatalf("Validate(%q) expected error", typ)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID TYPE ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	typ := MustParse("validation_error")
	if typ != ValidationError {
		t.Fatalf("MustParse(valid) = %q, want %q", typ, ValidationError)
	}
}

func TestType_String(t *testing.T) {
	if ServerError.String() != "server_error" {
		t.Fatalf("String() = %q, want %q", ServerError.String(), "server_error")
	}
}

func TestType_MarshalText(t *testing.T) {
	text, err := ThrottledError.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "throttled_error" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "throttled_error")
	}

	// invalid type should fail MarshalText
	invalid := Type("Invalid-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid type must return error")
	}
}

func TestType_UnmarshalText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("  VALIDATION-ERROR  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if typ != ValidationError {
		t.Fatalf("UnmarshalText() = %q, want %q", typ, ValidationError)
	}

	// invalid
	var bad Type
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestType_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Type)(nil)
	var _ encoding.TextUnmarshaler = (*Type)(nil)
}
