package auth

import "context"

// TokenIssuer abstracts session-token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (string, error)
}
