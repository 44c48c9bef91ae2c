package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getAnalytics(c *gin.Context) {
	start := queryDate(c, "startDate")
	end := queryDate(c, "endDate")

	report, err := s.services.Analytics.Report(c.Request.Context(), start, end)
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": report})
}
