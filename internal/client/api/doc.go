// Package api contains the client-side API surface for the user-directory
// service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     five backend operations: Login, Logout, ListUsers, QueryUsers and
//     AddUser.
//  2. A concrete HTTP implementation (see HTTPClient) that talks JSON to the
//     service under {base}/auth/, attaches the bearer token supplied by a
//     TokenSource, tags every request with an X-Request-Id, and normalizes
//     failures into sentinel error kinds.
//  3. The wire models shared with the service: Credentials, NewUserRequest,
//     UserRecord, Page, SearchQuery and Confirmation.
//
// # Error Handling
//
// Failures are classified as sentinel errors matched with errors.Is:
// ErrSession (no token available locally), ErrAuth, ErrValidation,
// ErrNetwork, ErrServer and ErrProtocol. Authenticated operations check
// token presence before dispatching, so a missing token never produces a
// malformed request; it short-circuits with ErrSession and lets the caller
// choose between a re-login prompt and a generic failure notice.
//
// All operations accept a context.Context and honor cancellation. No retry
// or backoff is applied.
package api
