package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jameshwang7534/Family-Tree/api/http/presenter"
	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

type TreeHandler struct {
	useCase tree.UseCase
	guard   IdentityResolver
}

func NewTreeHandler(useCase tree.UseCase, guard IdentityResolver) *TreeHandler {
	return &TreeHandler{useCase: useCase, guard: guard}
}

type createTreeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

// List returns all trees owned by the current user.
// @Summary List my trees
// @Tags    trees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} presenter.TreeResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /trees [get]
func (h *TreeHandler) List(c *fiber.Ctx) error {
	userID, err := h.guard.Resolve(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}

	trees, err := h.useCase.List(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list trees")
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewTrees(trees))
}

// Create creates a new tree for the current user.
// @Summary Create tree
// @Tags    trees
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body createTreeRequest true "tree payload"
// @Success 201 {object} presenter.TreeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /trees [post]
func (h *TreeHandler) Create(c *fiber.Ctx) error {
	userID, err := h.guard.Resolve(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}

	var req createTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	t, err := h.useCase.Create(c.Context(), userID, req.Name, req.Description, req.IconURL)
	if err != nil {
		var verr tree.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create tree")
	}
	return presenter.JSON(c, http.StatusCreated, presenter.NewTree(t))
}

// Get returns a tree by id if the current user owns it.
// @Summary Get tree
// @Tags    trees
// @Produce json
// @Security BearerAuth
// @Param   id path string true "tree id"
// @Success 200 {object} presenter.TreeResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /trees/{id} [get]
func (h *TreeHandler) Get(c *fiber.Ctx) error {
	userID, err := h.guard.Resolve(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "tree not found")
	}

	t, err := h.useCase.Get(c.Context(), userID, id)
	if err != nil {
		if errors.Is(err, tree.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "tree not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load tree")
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewTree(t))
}
