package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomcraft/internal/domain"
	"roomcraft/internal/service"
)

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Categories())
}

// @Summary List furniture templates with base prices
// @Tags furniture
// @Produce json
// @Param category query string false "Category"
// @Success 200 {array} service.PricedTemplate
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /furniture [get]
func (s *Server) listFurniture(c *gin.Context) {
	var category *domain.Category
	if v := c.Query("category"); v != "" {
		cat := domain.Category(v)
		category = &cat
	}
	list, err := s.catalog.ListFurniture(c, category)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get furniture template
// @Tags furniture
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} domain.FurnitureTemplate
// @Failure 404 {object} map[string]string
// @Router /furniture/{id} [get]
func (s *Server) getFurniture(c *gin.Context) {
	t, err := s.catalog.GetFurniture(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Create furniture template
// @Tags furniture
// @Accept json
// @Produce json
// @Param input body domain.FurnitureTemplate true "Template without id"
// @Success 201 {object} domain.FurnitureTemplate
// @Failure 400 {object} map[string]string
// @Router /furniture [post]
func (s *Server) createFurniture(c *gin.Context) {
	var req domain.FurnitureTemplate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	t, err := s.catalog.CreateFurniture(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary Update furniture template
// @Tags furniture
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param input body domain.FurnitureTemplate true "Template"
// @Success 200 {object} domain.FurnitureTemplate
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /furniture/{id} [put]
func (s *Server) updateFurniture(c *gin.Context) {
	var req domain.FurnitureTemplate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.ID = c.Param("id")
	t, err := s.catalog.UpdateFurniture(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Delete furniture template
// @Tags furniture
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /furniture/{id} [delete]
func (s *Server) deleteFurniture(c *gin.Context) {
	if err := s.catalog.DeleteFurniture(c, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List materials
// @Tags materials
// @Produce json
// @Success 200 {array} domain.Material
// @Router /materials [get]
func (s *Server) listMaterials(c *gin.Context) {
	list, err := s.catalog.ListMaterials(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create or replace a material
// @Tags materials
// @Accept json
// @Produce json
// @Param input body domain.Material true "Material; empty id creates a new one"
// @Success 200 {object} domain.Material
// @Failure 400 {object} map[string]string
// @Router /materials [put]
func (s *Server) upsertMaterial(c *gin.Context) {
	var req domain.Material
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	m, err := s.catalog.UpsertMaterial(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Delete a material
// @Tags materials
// @Param id path string true "Material ID"
// @Success 204
// @Router /materials/{id} [delete]
func (s *Server) deleteMaterial(c *gin.Context) {
	if err := s.catalog.DeleteMaterial(c, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List colors
// @Tags colors
// @Produce json
// @Success 200 {array} domain.Color
// @Router /colors [get]
func (s *Server) listColors(c *gin.Context) {
	list, err := s.catalog.ListColors(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create or replace a color by name
// @Tags colors
// @Accept json
// @Produce json
// @Param input body domain.Color true "Color"
// @Success 200 {object} domain.Color
// @Failure 400 {object} map[string]string
// @Router /colors [put]
func (s *Server) upsertColor(c *gin.Context) {
	var req domain.Color
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	col, err := s.catalog.UpsertColor(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// @Summary Delete a color
// @Tags colors
// @Param name path string true "Color name"
// @Success 204
// @Router /colors/{name} [delete]
func (s *Server) deleteColor(c *gin.Context) {
	if err := s.catalog.DeleteColor(c, c.Param("name")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type markupBody struct {
	Markup *float64 `json:"markup"`
}

// @Summary Get labor markup
// @Tags catalog
// @Produce json
// @Success 200 {object} markupBody
// @Router /markup [get]
func (s *Server) getMarkup(c *gin.Context) {
	v, err := s.catalog.LaborMarkup(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, markupBody{Markup: &v})
}

// @Summary Set labor markup
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body markupBody true "Markup fraction, 0.3 = +30%"
// @Success 200 {object} markupBody
// @Failure 400 {object} map[string]string
// @Router /markup [put]
func (s *Server) setMarkup(c *gin.Context) {
	var req markupBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Markup == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := s.catalog.SetLaborMarkup(c, *req.Markup)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, markupBody{Markup: &v})
}

// @Summary Price a configuration
// @Tags catalog
// @Accept json
// @Produce json
// @Param input body service.QuoteRequest true "Configuration"
// @Success 200 {object} pricing.Breakdown
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quote [post]
func (s *Server) quote(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid json: %v", err)})
		return
	}
	b, err := s.catalog.Quote(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
