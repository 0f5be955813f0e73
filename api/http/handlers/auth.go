package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jameshwang7534/Family-Tree/api/http/presenter"
	"github.com/jameshwang7534/Family-Tree/pkg/auth"
)

// IdentityResolver turns an Authorization header value into an
// authenticated user id. Every protected handler calls it explicitly.
type IdentityResolver interface {
	Resolve(header string) (uuid.UUID, error)
}

type AuthHandler struct {
	useCase auth.UseCase
	guard   IdentityResolver
}

func NewAuthHandler(useCase auth.UseCase, guard IdentityResolver) *AuthHandler {
	return &AuthHandler{useCase: useCase, guard: guard}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} presenter.AuthResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			return presenter.Error(c, http.StatusBadRequest, "all fields are required")
		case errors.Is(err, auth.ErrEmailTaken):
			return presenter.Error(c, http.StatusConflict, "email already registered")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, presenter.NewAuth(result))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} presenter.AuthResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "invalid email or password")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.JSON(c, http.StatusOK, presenter.NewAuth(result))
}

// Logout acknowledges a logout. Tokens are stateless, so invalidation
// happens client-side by discarding the token.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Logged out successfully"})
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.UserResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := h.guard.Resolve(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}

	// A valid token for a since-deleted identity is still unauthorized.
	user, err := h.useCase.CurrentUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}

	return presenter.JSON(c, http.StatusOK, presenter.NewUser(user))
}
