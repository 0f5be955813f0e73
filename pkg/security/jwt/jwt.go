package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jameshwang7534/Family-Tree/pkg/auth"
)

// Sentinel verification errors. The distinction matters for audit logging;
// the guard collapses both into a single outward rejection.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the registered claim set plus the account email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Service issues and verifies HS256-signed session tokens. The signing
// secret lives only here, so call sites never touch key material and
// rotation can be introduced behind the constructor.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a claim set for the given user. Implements auth.TokenIssuer.
func (s *Service) Issue(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: user.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses tokenStr, checks the signature and expiry, and returns the
// claim set. A token whose expiry equals the current instant counts as
// expired.
func (s *Service) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
