// fleetd control-plane server — owns the task queue, the runner protocol,
// the lock coordinator, verification, and supervision.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/louannemur/fleetd/pkg/agent"
	"github.com/louannemur/fleetd/pkg/api"
	"github.com/louannemur/fleetd/pkg/config"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/database"
	"github.com/louannemur/fleetd/pkg/services"
	"github.com/louannemur/fleetd/pkg/supervisor"
	"github.com/louannemur/fleetd/pkg/verifier"
	"github.com/louannemur/fleetd/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()

	slog.Info("Starting fleetd",
		"version", version.Full(),
		"addr", cfg.Server.Addr())

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	coord := coordinator.New(dbClient.Client)
	exceptionService := services.NewExceptionService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client, coord)
	agentService := services.NewAgentService(dbClient.Client)
	runnerService := services.NewRunnerService(dbClient.Client, coord, exceptionService)

	var llm agent.LLMClient
	if cfg.LLM.APIKey != "" {
		llm, err = agent.NewAnthropicClient(cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		slog.Info("LLM client initialized", "model", cfg.LLM.Model)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set; semantic verification will score neutral")
	}

	verifierService := verifier.NewService(dbClient.Client, verifier.ExecRunner{}, semanticJudge(llm), exceptionService)

	supervisorService := supervisor.NewService(dbClient.Client, coord, taskService, exceptionService, cfg.Supervisor.Interval)
	supervisorService.Start(ctx)
	defer supervisorService.Stop()

	server := api.NewServer(dbClient, taskService, agentService, runnerService, exceptionService, verifierService)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// semanticJudge adapts the optional LLM client to the verifier's interface.
// Without a key the judge is absent and the semantic stage scores neutral.
func semanticJudge(llm agent.LLMClient) verifier.ChatCompleter {
	if llm == nil {
		return unavailableJudge{}
	}
	return llm
}

type unavailableJudge struct{}

func (unavailableJudge) CompleteText(_ context.Context, _, _ string) (string, error) {
	return "", errors.New("no llm configured")
}
