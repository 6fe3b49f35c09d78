package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"roomcraft/internal/domain"
	"roomcraft/internal/service"
)

type Server struct {
	engine  *gin.Engine
	catalog *service.CatalogService
	orders  *service.OrderService
	log     *zap.Logger
}

func NewServer(catalog *service.CatalogService, orders *service.OrderService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	s := &Server{engine: r, catalog: catalog, orders: orders, log: log.Named("http")}
	r.Use(s.requestLogger(), gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/categories", s.listCategories)

		furniture := v1.Group("/furniture")
		furniture.GET("", s.listFurniture)
		furniture.POST("", s.createFurniture)
		furniture.GET(":id", s.getFurniture)
		furniture.PUT(":id", s.updateFurniture)
		furniture.DELETE(":id", s.deleteFurniture)

		materials := v1.Group("/materials")
		materials.GET("", s.listMaterials)
		materials.PUT("", s.upsertMaterial)
		materials.DELETE(":id", s.deleteMaterial)

		colors := v1.Group("/colors")
		colors.GET("", s.listColors)
		colors.PUT("", s.upsertColor)
		colors.DELETE(":name", s.deleteColor)

		v1.GET("/markup", s.getMarkup)
		v1.PUT("/markup", s.setMarkup)

		v1.POST("/quote", s.quote)

		orders := v1.Group("/orders")
		orders.POST("", s.submitOrder)
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.PATCH(":id/status", s.updateOrderStatus)
		orders.GET(":id/cutlist", s.cutList)
	}
}

// requestLogger пишет каждый запрос в zap; уровень зависит от статуса
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= http.StatusInternalServerError:
			s.log.Error("HTTP request completed", fields...)
		case status >= http.StatusBadRequest:
			s.log.Warn("HTTP request completed", fields...)
		default:
			s.log.Info("HTTP request completed", fields...)
		}
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
