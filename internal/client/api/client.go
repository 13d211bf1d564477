package api

import "context"

// TokenSource supplies the current bearer token. An empty string means no
// session is active. The session store implements this.
type TokenSource interface {
	Token() string
}

// Client is the API contract against the user-directory service.
type Client interface {
	// Login exchanges credentials for an opaque bearer token.
	Login(ctx context.Context, creds Credentials) (string, error)

	// Logout invalidates the current token on the server. It short-circuits
	// with ErrSession when no token is available locally; callers must clear
	// local session state regardless of the outcome.
	Logout(ctx context.Context) error

	// ListUsers fetches one page of the directory. page is zero-based.
	ListUsers(ctx context.Context, page, size int) (*Page, error)

	// QueryUsers fetches one page of users matching the filter.
	QueryUsers(ctx context.Context, query SearchQuery, page, size int) (*Page, error)

	// AddUser creates a new account. The endpoint is unauthenticated; any
	// authorization is enforced server-side.
	AddUser(ctx context.Context, user NewUserRequest) (*Confirmation, error)
}
