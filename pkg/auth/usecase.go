package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UseCase describes authentication/registration behavior.
type UseCase interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (User, error)
}

// Result bundles the stored user with a freshly issued session token.
type Result struct {
	User  User
	Token string
}

type service struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, tokens TokenIssuer) UseCase {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password, firstName, lastName string) (Result, error) {
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return Result{}, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now().UTC(),
	}
	// Uniqueness is enforced inside the repository, so a concurrent
	// registration of the same email loses with ErrEmailTaken here.
	if err := s.repo.Create(ctx, user); err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return Result{}, err
	}
	return Result{User: user, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Result{}, ErrMissingField
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return Result{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return Result{}, err
	}
	return Result{User: user, Token: token}, nil
}

func (s *service) CurrentUser(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, err
	}
	return user, nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Malformed hashes compare as false rather than returning an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
