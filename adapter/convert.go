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

// Package adapter converts handled responses into flat, transport-neutral
// descriptors for structured logging, tracing, or message bus propagation.
package adapter

import (
	"envx.dev/enverr/handler"
)

// Descriptor is the flattened projection of a handled exception. Unlike the
// envelope it has no nesting and no nullable fields, which makes it suitable
// as a log or trace attachment.
type Descriptor struct {
	// Type and Code are the envelope's top-level taxonomy fields.
	Type string
	Code string

	// Detail is the top-level human-readable message.
	Detail string

	// Attr is the flattened field path, empty for object-level errors.
	Attr string

	// HTTPStatus is the resolved transport status.
	HTTPStatus int

	// EventID is the reporting hook's event identifier, if any.
	EventID string

	// Errors is the number of individual errors carried: 1 for a plain
	// envelope, the list length for a multi-error envelope.
	Errors int
}

// ToDescriptor converts a handled response into a portable Descriptor.
//
// It performs no redaction or filtering; it exposes exactly what the
// envelope contains. A nil response yields the zero Descriptor.
func ToDescriptor(resp *handler.Response) Descriptor {
	if resp == nil {
		return Descriptor{}
	}
	d := Descriptor{
		Type:       resp.Body.Type,
		Code:       resp.Body.Code,
		Detail:     resp.Body.Detail,
		HTTPStatus: resp.Status,
		EventID:    resp.Body.EventID,
		Errors:     1,
	}
	if resp.Body.Attr != nil {
		d.Attr = *resp.Body.Attr
	}
	if n := len(resp.Body.List); n > 0 {
		d.Errors = n
	}
	return d
}
