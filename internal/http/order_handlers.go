package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomcraft/internal/domain"
	"roomcraft/internal/export"
)

// SubmitOrderRequest тело запроса на оформление заказа
type SubmitOrderRequest struct {
	Items       []domain.PlacedItem `json:"items"`
	ClientTotal float64             `json:"client_total"`
}

// @Summary Submit an order
// @Description The server recomputes the total from the catalog; its value wins.
// @Tags orders
// @Accept json
// @Produce json
// @Param input body SubmitOrderRequest true "Placed items and the client total"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders [post]
func (s *Server) submitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.SubmitOrder(c, req.Items, req.ClientTotal)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// @Summary List orders, most recent first
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	list, err := s.orders.ListOrders(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	o, err := s.orders.GetOrder(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateStatusRequest новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Change order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body UpdateStatusRequest true "Status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}
	o, err := s.orders.UpdateOrderStatus(c, c.Param("id"), status)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Download the cut list of an order
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/cutlist [get]
func (s *Server) cutList(c *gin.Context) {
	o, err := s.orders.GetOrder(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	data, err := export.CutList(*o)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", o.ID+"-cutlist.xlsx"))
	c.Data(http.StatusOK, export.ContentType, data)
}
