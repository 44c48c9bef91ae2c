package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func (s *Server) listCustomers(c *gin.Context) {
	customers, err := s.services.Customers.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	customer, err := s.services.Customers.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) createCustomer(c *gin.Context) {
	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer, err := s.services.Customers.Create(c.Request.Context(), &input)
	if err != nil {
		s.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer, err := s.services.Customers.Update(c.Request.Context(), id, &input)
	if err != nil {
		s.respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.services.Customers.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
