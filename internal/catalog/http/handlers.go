package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

type Handler struct {
	projects ProjectAPI
	cart     CartAPI
}

// Register attaches the catalog routes to the given router. Paths and
// payload shapes follow the published wire contract.
func Register(r gin.IRouter, projects ProjectAPI, cart CartAPI) {
	h := &Handler{projects: projects, cart: cart}

	r.GET("/projects", h.listProjects)
	r.POST("/project", h.createProject)
	r.DELETE("/project/:id", h.deleteProject)

	r.GET("/cart", h.getCart)
	r.POST("/cart", h.addToCart)
	r.DELETE("/cart/:id", h.removeFromCart)
}

// queryInt parses a query value, falling back to def when the value is
// absent or non-numeric.
func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) listProjects(c *gin.Context) {
	req := domain.NewPageRequest(
		queryInt(c, "page", domain.DefaultPage),
		queryInt(c, "limit", domain.DefaultLimit),
	)

	page, err := h.projects.ListPage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// fields are accepted as given; client-side validation is the only
	// gate on empty titles
	_, err := h.projects.Create(c.Request.Context(), domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully."})
}

func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Param("id")

	err := h.projects.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func (h *Handler) getCart(c *gin.Context) {
	userID := c.Query("userId")

	items, err := h.cart.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartItems": items,
		"count":     len(items),
	})
}

func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project ID is required"})
		return
	}

	item, err := h.cart.Add(c.Request.Context(), req.ProjectID, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Project added to cart successfully",
		"cartItem": item,
	})
}

func (h *Handler) removeFromCart(c *gin.Context) {
	id := c.Param("id")

	err := h.cart.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed successfully"})
}
