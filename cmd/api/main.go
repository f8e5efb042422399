package main

import (
	"context"
	"fmt"

	"supermind/config"
	_ "supermind/docs" // Swagger docs
	"supermind/internal/httpserver"
	"supermind/pkg/langflow"
	"supermind/pkg/log"
)

// @title       SuperMind API
// @description AI-powered report generation backed by Langflow, with chat session history and PDF/DOCX/HTML export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting SuperMind backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Langflow URL: %s", cfg.Langflow.BaseURL)

	// 3. Langflow client
	flow, err := langflow.New(langflow.Config{
		BaseURL:    cfg.Langflow.BaseURL,
		LangflowID: cfg.Langflow.LangflowID,
		FlowID:     cfg.Langflow.FlowID,
		Token:      cfg.Langflow.Token,
		Timeout:    cfg.Langflow.Timeout(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Langflow client: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Web:         cfg.Web,
		Flow:        flow,
		Tweaks:      cfg.Langflow.Tweaks,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
