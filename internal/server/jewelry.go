package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/models"
	"github.com/charankumarpalimara/jewelstock/internal/store"
)

func (s *Server) listJewelry(c *gin.Context) {
	filter := models.JewelryFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}

	page, err := s.services.Inventory.List(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jewelry":     s.jewelryViews(page.Jewelry),
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
		"total":       page.Total,
	})
}

func (s *Server) getJewelry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	j, err := s.services.Inventory.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}
	c.JSON(http.StatusOK, s.jewelryView(*j))
}

// bindJewelryBody accepts either a JSON body or a multipart form with
// image attachments, binding into the given input struct
func (s *Server) bindJewelryBody(c *gin.Context, input interface{}) ([]string, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return nil, false
		}
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return nil, false
		}
		images, err := s.saveImages(c, form.File["images"])
		if err != nil {
			s.respondError(c, err, "")
			return nil, false
		}
		return images, true
	}

	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}
	return nil, true
}

func (s *Server) createJewelry(c *gin.Context) {
	var input models.JewelryInput
	images, ok := s.bindJewelryBody(c, &input)
	if !ok {
		return
	}

	j, err := s.services.Inventory.Create(c.Request.Context(), &input, images)
	if err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}
	c.JSON(http.StatusCreated, s.jewelryView(*j))
}

func (s *Server) updateJewelry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.JewelryUpdateInput
	images, ok := s.bindJewelryBody(c, &input)
	if !ok {
		return
	}

	j, err := s.services.Inventory.Update(c.Request.Context(), id, &input, images)
	if err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}
	c.JSON(http.StatusOK, s.jewelryView(*j))
}

func (s *Server) deleteJewelry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.services.Inventory.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "Jewelry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jewelry deleted successfully"})
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.services.Inventory.Categories(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, categories)
}

type bulkJewelryRequest struct {
	Operation string                  `json:"operation" binding:"required"`
	IDs       []int64                 `json:"ids" binding:"required,min=1"`
	Update    store.JewelryBulkUpdate `json:"update"`
}

func (s *Server) bulkJewelry(c *gin.Context) {
	var req bulkJewelryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := s.services.Inventory.Bulk(c.Request.Context(), req.Operation, req.IDs, req.Update)
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"operation":     result.Operation,
		"affectedCount": result.AffectedCount,
	})
}
