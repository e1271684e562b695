package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/childguard/ai-microservice/internal/pkg/config"
	"github.com/childguard/ai-microservice/internal/pkg/health"
	"github.com/childguard/ai-microservice/internal/pkg/llm"
	"github.com/childguard/ai-microservice/internal/pkg/logger"
	"github.com/childguard/ai-microservice/internal/pkg/middleware"
	natspkg "github.com/childguard/ai-microservice/internal/pkg/nats"
	"github.com/childguard/ai-microservice/internal/pkg/server"
	"github.com/childguard/ai-microservice/internal/utils"
	"github.com/childguard/ai-microservice/services/analysis/gateway"
	"github.com/childguard/ai-microservice/services/analysis/handler"
	analysishttp "github.com/childguard/ai-microservice/services/analysis/handler/http"
	"github.com/childguard/ai-microservice/services/analysis/usecase"
)

const serviceName = "ai-microservice"

func main() {
	configs := config.InitConfig()

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Initialize NATS client (optional, publishing disabled without a URL)
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
	}

	// Initialize AI client for the configured backend
	aiClient, err := llm.NewClient(configs.AI)
	if err != nil {
		zapLogger.Fatal("Failed to initialize AI client", logger.Err(err))
	}
	zapLogger.Info("AI backend initialized", logger.String("backend", configs.AI.Backend))

	// Initialize gateway
	analysisGW := gateway.NewAnalysisGW(natsClient)

	// Initialize usecases
	movementUC := usecase.NewMovementUC(aiClient, analysisGW)
	routeSafetyUC := usecase.NewRouteSafetyUC(aiClient, analysisGW)

	// Initialize handlers
	analysisHandler := analysishttp.NewAnalysisHandler(movementUC, routeSafetyUC)
	h := handler.NewHandler(analysisHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware())

	health.RegisterHealthEndpoints(e, serviceName)
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	if natsClient != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			natsClient.Close()
			return nil
		})
	}

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
