package jwt

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jameshwang7534/Family-Tree/pkg/auth"
)

// TokenVerifier is what the guard needs from the token service.
type TokenVerifier interface {
	Verify(token string) (Claims, error)
}

// Guard resolves an Authorization header value to an authenticated identity.
// Protected handlers call Resolve explicitly; there is no middleware that
// stashes the identity in request-scoped globals.
type Guard struct {
	verifier TokenVerifier
}

func NewGuard(verifier TokenVerifier) *Guard {
	return &Guard{verifier: verifier}
}

// Resolve expects "Bearer <token>" (scheme is case-insensitive) and returns
// the token subject. Missing header, wrong scheme, empty token, bad
// signature, and expiry all collapse into auth.ErrUnauthorized so the
// client cannot tell them apart.
func (g *Guard) Resolve(header string) (uuid.UUID, error) {
	if header == "" {
		return uuid.Nil, auth.ErrUnauthorized
	}
	scheme, tokenStr, found := strings.Cut(header, " ")
	tokenStr = strings.TrimSpace(tokenStr)
	if !found || tokenStr == "" || !strings.EqualFold(scheme, "Bearer") {
		return uuid.Nil, auth.ErrUnauthorized
	}
	claims, err := g.verifier.Verify(tokenStr)
	if err != nil {
		return uuid.Nil, auth.ErrUnauthorized
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, auth.ErrUnauthorized
	}
	return id, nil
}
