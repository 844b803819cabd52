package main

import (
	"github.com/pushforge/fcm-composer/internal/client"
	"github.com/pushforge/fcm-composer/internal/handler"
	"github.com/pushforge/fcm-composer/internal/metrics"
	"github.com/pushforge/fcm-composer/internal/repository"
	"github.com/pushforge/fcm-composer/internal/server"
	"github.com/pushforge/fcm-composer/internal/service"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	fx.New(
		fx.Provide(func() *zap.Logger { return logger }),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		metrics.Module,
		server.Module,
		handler.Module,
		service.Module,
		repository.Module,
		client.Module,
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}
