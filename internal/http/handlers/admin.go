package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/stats"
)

type AdminStore interface {
	AllUsers() []user.User
	UpdateUser(id string, upd user.Update) (user.User, bool)
	Categories() []string
	AddCategory(label string) bool
	RemoveCategory(label string) bool
}

type AdminHandler struct {
	stats *stats.Aggregator
	store AdminStore
}

func NewAdminHandler(agg *stats.Aggregator, store AdminStore) *AdminHandler {
	return &AdminHandler{stats: agg, store: store}
}

func (h *AdminHandler) Stats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.stats.Stats())
}

func (h *AdminHandler) StudentActivity(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.stats.StudentActivity())
}

func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.store.AllUsers())
}

// PatchUser shallow-merges the provided fields; this is how an admin
// promotes a student or fixes a profile.
func (h *AdminHandler) PatchUser(ctx *gin.Context) {
	id := ctx.Param("id")

	var upd user.Update

	if !BindJSON(ctx, &upd) {
		return
	}

	u, ok := h.store.UpdateUser(id, upd)

	if !ok {
		RespondNotFound(ctx, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, u)
}

type addCategoryRequest struct {
	Category string `json:"category" binding:"required,min=1,max=80"`
}

func (h *AdminHandler) ListCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.store.Categories())
}

func (h *AdminHandler) AddCategory(ctx *gin.Context) {
	var req addCategoryRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if !h.store.AddCategory(req.Category) {
		RespondBadRequest(ctx, "Category already exists")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Category added successfully"})
}

// DeleteCategory only edits the label list. Registrations that recorded
// the label keep it verbatim.
func (h *AdminHandler) DeleteCategory(ctx *gin.Context) {
	label := ctx.Param("category")

	if !h.store.RemoveCategory(label) {
		RespondNotFound(ctx, "Category not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
