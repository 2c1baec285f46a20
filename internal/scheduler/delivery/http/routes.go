package http

import (
	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.POST("", mw.RateLimit(), h.Schedule)
		sched.POST("/free-windows", mw.RateLimit(), h.FreeWindows)
		sched.POST("/validate", mw.RateLimit(), h.Validate)
	}
}
