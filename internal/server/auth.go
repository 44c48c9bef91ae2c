package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/auth"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := s.services.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		s.respondError(c, err, "")
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (s *Server) currentUser(c *gin.Context) {
	claims := auth.Identity(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	user, err := s.services.Users.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		s.respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
