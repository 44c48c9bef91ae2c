package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/auth"
	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func (s *Server) listSales(c *gin.Context) {
	filter := models.SaleFilter{
		StartDate: queryDate(c, "startDate"),
		EndDate:   queryDate(c, "endDate"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
	}

	page, err := s.services.Sales.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err, "Sale not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sales":       page.Sales,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
		"total":       page.Total,
	})
}

func (s *Server) getSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sale, err := s.services.Sales.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (s *Server) createSale(c *gin.Context) {
	var input models.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var createdBy *int64
	if claims := auth.Identity(c); claims != nil {
		createdBy = &claims.UserID
	}

	sale, err := s.services.Sales.Create(c.Request.Context(), &input, createdBy)
	if err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (s *Server) updateSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.SaleUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var updatedBy *int64
	if claims := auth.Identity(c); claims != nil {
		updatedBy = &claims.UserID
	}

	sale, err := s.services.Sales.Update(c.Request.Context(), id, &input, updatedBy)
	if err != nil {
		s.respondError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (s *Server) deleteSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.services.Sales.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}

func (s *Server) salesAnalytics(c *gin.Context) {
	summary, err := s.services.Sales.Summary(c.Request.Context(),
		queryDate(c, "startDate"), queryDate(c, "endDate"))
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, summary)
}
