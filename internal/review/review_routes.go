package review

import (
	"github.com/JiaqinWu/DCPS-Salary/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	ReadRate    rate.Limit
	ReadBurst   int
	UploadRate  rate.Limit
	UploadBurst int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	opts RouteOptions,
	logger *zap.Logger,
) {
	readLimit := middleware.RateLimitByIP(opts.ReadRate, opts.ReadBurst)
	writeLimit := middleware.RateLimitByIP(opts.UploadRate, opts.UploadBurst)

	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", readLimit, handler.GetOptions)
		employees.GET("/:id/review", readLimit, handler.GetReview)
	}

	workbooks := r.Group("/workbooks")
	workbooks.Use(middleware.ContextLogger(logger))
	{
		workbooks.GET("/current", readLimit, handler.Current)
		workbooks.POST("", writeLimit, handler.Upload)
		workbooks.POST("/reload", writeLimit, handler.Reload)
	}
}
