package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) lowStockAlerts(c *gin.Context) {
	report, err := s.services.Alerts.LowStock(c.Request.Context(), queryInt(c, "threshold", 0))
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) outOfStockAlerts(c *gin.Context) {
	report, err := s.services.Alerts.OutOfStock(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) allAlerts(c *gin.Context) {
	alerts, err := s.services.Alerts.All(c.Request.Context(), queryInt(c, "threshold", 0))
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, alerts)
}
