package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

// User endpoints keep the original success/error envelope shape

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.services.Users.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := s.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (s *Server) createUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := s.services.Users.Create(c.Request.Context(), &input)
	if err != nil {
		s.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := s.services.Users.Update(c.Request.Context(), id, &input)
	if err != nil {
		s.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user":    user,
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.services.Users.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

type bulkDeleteUsersRequest struct {
	UserIDs []int64 `json:"userIds" binding:"required,min=1"`
}

func (s *Server) bulkDeleteUsers(c *gin.Context) {
	var req bulkDeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User IDs array is required"})
		return
	}

	deleted, err := s.services.Users.BulkDelete(c.Request.Context(), req.UserIDs)
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": deleted,
	})
}

func (s *Server) toggleUserStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := s.services.Users.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "User not found")
		return
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"user":    user,
	})
}
