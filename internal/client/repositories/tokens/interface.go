// Package tokens persists the single session token the console keeps
// between runs.
package tokens

import "context"

// Repository stores at most one token. Get returns an empty string when
// nothing is persisted; Delete on an absent token is a no-op.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
