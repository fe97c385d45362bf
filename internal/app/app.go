package app

import (
	"context"
	"errors"

	"github.com/JiaqinWu/DCPS-Salary/internal/bootstrap"
	"github.com/JiaqinWu/DCPS-Salary/internal/review"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/config"
	"github.com/JiaqinWu/DCPS-Salary/internal/workbook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Review review.Service
}

// BuildApp wires the review module onto router. The configured workbook is
// loaded once up front; a failure there is logged and the API starts empty so
// a workbook can still be uploaded. Background work stops when ctx is done.
func BuildApp(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("app")

	repo := workbook.NewRepository(workbook.Options{
		StaffSheet: cfg.Workbook.StaffSheet,
		ScaleSheet: cfg.Workbook.ScaleSheet,
	}, logger)
	reviewService := review.NewService(repo, logger)

	if cfg.Workbook.LoadOnStart {
		summary, err := reviewService.Load(ctx, cfg.Workbook.Path)
		if err != nil {
			log.Warn("initial workbook load failed, waiting for upload",
				zap.String("path", cfg.Workbook.Path),
				zap.Error(err),
			)
		} else {
			auditLogger.Log(ctx, bootstrap.AuditLog{
				Action:  "WORKBOOK_LOADED",
				Message: "Workbook loaded at startup",
				Meta: map[string]any{
					"source":    summary.Source,
					"employees": summary.Employees,
					"underpaid": summary.Underpaid,
				},
			})
		}
	}

	if cfg.Workbook.PollInterval > 0 {
		go review.WatchWorkbook(ctx, reviewService, cfg.Workbook.Path, logger, cfg.Workbook.PollInterval)
	}

	registerModules(router, reviewService, cfg, logger)

	return &App{Config: cfg, Review: reviewService}, nil
}
