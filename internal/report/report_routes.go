package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/report", h.Summary)
	r.GET("/export", h.Export)
}
