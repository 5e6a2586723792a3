// Package client talks to the students gRPC service on behalf of the CLI.
//
// GRPCClient keeps the bearer token returned by Login in memory and attaches
// it to every call through a unary client interceptor. Server statuses are
// mapped back to the sentinel kinds in internal/common (Unauthorized,
// NotFound, Conflict, ValidationFailed) so callers can match them with
// errors.Is; Unavailable and DeadlineExceeded become ErrUnavailable.
package client
