package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func (s *Server) getRates(c *gin.Context) {
	quotes, err := s.services.Rates.Current(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rates": quotes})
}

func (s *Server) updateRates(c *gin.Context) {
	var input models.RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	quotes, err := s.services.Rates.Update(c.Request.Context(), &input)
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rates updated successfully",
		"rates":   quotes,
	})
}

func (s *Server) rateHistory(c *gin.Context) {
	history, err := s.services.Rates.History(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}
