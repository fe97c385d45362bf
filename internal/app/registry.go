package app

import (
	"net/http"

	"github.com/JiaqinWu/DCPS-Salary/internal/review"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/config"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type healthResponse struct {
	Status         string `json:"status"`
	WorkbookLoaded bool   `json:"workbook_loaded"`
}

func registerModules(
	router *gin.Engine,
	reviewService review.Service,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// --- Handlers ---
	reviewHandler := review.NewHandler(reviewService, review.HandlerOptions{
		WorkbookPath:   cfg.Workbook.Path,
		MaxUploadBytes: cfg.Upload.MaxBytes,
	})

	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	})

	router.GET("/healthz", func(c *gin.Context) {
		_, err := reviewService.Current(c.Request.Context())
		response.Success(c, http.StatusOK, healthResponse{
			Status:         "ok",
			WorkbookLoaded: err == nil,
		}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		review.RegisterRoutes(api, reviewHandler, review.RouteOptions{
			ReadRate:    rate.Limit(cfg.Upload.ReadRate),
			ReadBurst:   cfg.Upload.ReadBurst,
			UploadRate:  rate.Limit(cfg.Upload.RatePerSec),
			UploadBurst: cfg.Upload.Burst,
		}, logger)
	}
}
