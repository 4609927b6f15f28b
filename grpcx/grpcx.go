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

// Package grpcx adapts handled exceptions to gRPC status errors with
// standard google.rpc error details.
package grpcx

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"envx.dev/enverr/classify"
	"envx.dev/enverr/handler"
)

// Domain identifies this library in google.rpc.ErrorInfo details.
const Domain = "enverr"

// FromHTTPStatus maps a resolved HTTP status to the closest gRPC code.
func FromHTTPStatus(status int) gcodes.Code {
	switch status {
	case 400, 406, 415:
		return gcodes.InvalidArgument
	case 401:
		return gcodes.Unauthenticated
	case 403:
		return gcodes.PermissionDenied
	case 404:
		return gcodes.NotFound
	case 405:
		return gcodes.Unimplemented
	case 409:
		return gcodes.FailedPrecondition
	case 429:
		return gcodes.ResourceExhausted
	case 503:
		return gcodes.Unavailable
	case 504:
		return gcodes.DeadlineExceeded
	}
	return gcodes.Internal
}

// ToStatus converts a handled response into a gRPC status carrying standard
// error details:
//
//   - google.rpc.ErrorInfo with the envelope code as reason and, when
//     reporting produced one, the event identifier in metadata;
//   - google.rpc.BadRequest with one field violation per carried error that
//     names a field;
//   - google.rpc.RetryInfo when classification resolved a Retry-After.
//
// If attaching details fails the base status is returned unadorned.
func ToStatus(resp *handler.Response) *gstatus.Status {
	if resp == nil {
		return gstatus.New(gcodes.OK, "")
	}

	base := gstatus.New(FromHTTPStatus(resp.Status), resp.Body.Detail)

	info := &errdetails.ErrorInfo{
		Reason: resp.Body.Code,
		Domain: Domain,
		Metadata: map[string]string{
			"type": resp.Body.Type,
		},
	}
	if resp.Body.EventID != "" {
		info.Metadata["event_id"] = resp.Body.EventID
	}

	details := []protoadapt.MessageV1{info}
	if br := badRequest(resp); br != nil {
		details = append(details, br)
	}
	if ri := retryInfo(resp); ri != nil {
		details = append(details, ri)
	}

	with, err := base.WithDetails(details...)
	if err != nil {
		return base
	}
	return with
}

// badRequest collects field violations from the envelope. A multi-error
// envelope yields one violation per list entry naming a field; a plain
// envelope yields a single violation when its attr is set. Object-level
// errors carry no field and produce no violation.
func badRequest(resp *handler.Response) *errdetails.BadRequest {
	var violations []*errdetails.BadRequest_FieldViolation

	add := func(attr *string, detail string) {
		if attr == nil {
			return
		}
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       *attr,
			Description: detail,
		})
	}

	if len(resp.Body.List) > 0 {
		for _, e := range resp.Body.List {
			add(e.Attr, e.Detail)
		}
	} else {
		add(resp.Body.Attr, resp.Body.Detail)
	}

	if len(violations) == 0 {
		return nil
	}
	return &errdetails.BadRequest{FieldViolations: violations}
}

// retryInfo translates the resolved Retry-After header, if any, into a
// google.rpc.RetryInfo hint.
func retryInfo(resp *handler.Response) *errdetails.RetryInfo {
	ra, ok := resp.Headers[classify.RetryAfterHeader]
	if !ok {
		return nil
	}
	secs, err := strconv.Atoi(ra)
	if err != nil || secs < 0 {
		return nil
	}
	return &errdetails.RetryInfo{
		RetryDelay: durationpb.New(time.Duration(secs) * time.Second),
	}
}

// UnaryServerInterceptor returns an interceptor that runs every handler
// error through the dispatch gate and answers with a detailed gRPC status.
// Bypassed exceptions are returned as-is so the server's default error
// translation applies.
func UnaryServerInterceptor(h *handler.Handler) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		resp, err := next(ctx, req)
		if err == nil {
			return resp, nil
		}

		handled, ok := h.Handle(ctx, err)
		if !ok {
			return nil, err
		}
		return nil, ToStatus(handled).Err()
	}
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
