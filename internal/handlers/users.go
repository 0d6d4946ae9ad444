package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/internal/middleware"
	"gamevault/internal/models"
	"gamevault/internal/service"
)

func (h HandlerSet) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	c.JSON(http.StatusOK, gin.H{"users": resp})
}

func (h HandlerSet) GetUser(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

type profileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`

	Password        *string `json:"password"`
	CurrentPassword string  `json:"currentPassword"`
}

// UpdateProfile applies the caller's own profile changes. The token
// identity decides whose profile is touched, not the path parameter.
func (h HandlerSet) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), claims.UserID, service.ProfileUpdate{
		Username:        req.Username,
		Email:           req.Email,
		Name:            req.Name,
		Surname:         req.Surname,
		Bio:             req.Bio,
		Avatar:          req.Avatar,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h HandlerSet) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type roleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h HandlerSet) UpdateRole(c *gin.Context) {
	var req roleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.UpdateRole(c.Request.Context(), c.Param("id"), models.Role(req.Role))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
