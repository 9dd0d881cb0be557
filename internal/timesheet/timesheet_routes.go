package timesheet

import (
	"time"

	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the timesheet CRUD surface. The import POSTs accept
// an Idempotency-Key header so a retried upload does not re-run the batch.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	idemp := middleware.Idempotency(rdb, 10*time.Minute)

	r.POST("/add", idemp, h.Add)
	r.POST("/add-single", idemp, h.AddSingle)
	r.GET("", h.GetAll)
	r.GET("/filter", h.Filter)
	r.GET("/clients", h.Clients)
	r.GET("/projects", h.Projects)
	r.GET("/jobs", h.Jobs)
	r.GET("/first-names", h.FirstNames)
	r.GET("/last-names", h.LastNames)
	r.GET("/work-items", h.WorkItems)
	r.PUT("/update/:id", h.Update)
	r.DELETE("/delete/:id", h.Delete)
}
