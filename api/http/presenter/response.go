package presenter

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jameshwang7534/Family-Tree/pkg/auth"
	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// UserResponse is the wire shape of a user. The password hash is not part
// of any response type.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TreeResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"iconUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewUser(u auth.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func NewAuth(r auth.Result) AuthResponse {
	return AuthResponse{Token: r.Token, User: NewUser(r.User)}
}

func NewTree(t tree.Tree) TreeResponse {
	return TreeResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Name:        t.Name,
		Description: t.Description,
		IconURL:     t.IconURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTrees(trees []tree.Tree) []TreeResponse {
	out := make([]TreeResponse, 0, len(trees))
	for _, t := range trees {
		out = append(out, NewTree(t))
	}
	return out
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
