package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/service"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

// respondError maps domain errors to HTTP statuses. notFound is the
// resource-specific message used for missing records.
func (s *Server) respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
	case errors.Is(err, store.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock"})
	case errors.Is(err, store.ErrDuplicateSKU):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Jewelry with this SKU already exists"})
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrUnknownBulkOperation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		s.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		message := "Server error"
		if !s.cfg.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// queryDate accepts RFC 3339 timestamps or plain dates
func queryDate(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
