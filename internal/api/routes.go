package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/cluedeck/internal/deck"
)

func RegisterRoutes(r *gin.Engine, run *deck.Run) {
	h := &handlers{run: run}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/layout", h.layout)
		api.POST("/sheets", h.sheets)
		api.POST("/filter", h.filter)
		api.GET("/qr", qrHandler)
	}
}
