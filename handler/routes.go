package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP API around h.
func NewRouter(h *StatementHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID())

	// Multipart bodies beyond this are spooled to disk
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Statement Top Amounts",
		})
	})

	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/top-amounts", h.TopAmounts)
			statements.POST("/top-amounts/export", h.ExportTopAmounts)
			statements.POST("/extract", h.Extract)
		}
		api.POST("/tables/export", h.ExportTable)
	}

	return router
}
