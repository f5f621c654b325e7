package bootstrap

import (
	"log/slog"
	"os"

	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	log := logger.New(cfg.Log, os.Stdout, gin.Mode() == gin.ReleaseMode)
	slog.SetDefault(log)
	return log
}
