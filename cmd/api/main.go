package main

import (
	"context"

	"github.com/JiaqinWu/DCPS-Salary/internal/app"
	"github.com/JiaqinWu/DCPS-Salary/internal/bootstrap"
	"github.com/JiaqinWu/DCPS-Salary/internal/middleware"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/apperror"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	newLogger := zap.NewDevelopment
	if cfg.IsProduction() {
		newLogger = zap.NewProduction
		gin.SetMode(gin.ReleaseMode)
	}
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()
	r.Use(middleware.RequestID())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// build dependency + routes
	if _, err := app.BuildApp(ctx, r, cfg, auditLogger, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(r, cfg.Server, auditLogger, cancel)
}
