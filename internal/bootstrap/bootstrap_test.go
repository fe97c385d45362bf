package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/JiaqinWu/DCPS-Salary/internal/bootstrap"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "WORKBOOK_LOADED",
		Message: "workbook loaded",
		Meta:    map[string]any{"employees": 12},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "WORKBOOK_LOADED", entry.ContextMap()["action"])
	assert.Equal(t, "workbook loaded", entry.ContextMap()["message"])
}

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := bootstrap.NewHTTPServer(gin.New(), config.ServerOptions{
		Port:         "8081",
		ReadTimeout:  time.Second,
		WriteTimeout: 2 * time.Second,
		IdleTimeout:  3 * time.Second,
	})

	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
}
