// fleet-runner — registers with a fleetd control plane, polls for queued
// tasks, and runs agent loops against the local working directory.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/louannemur/fleetd/pkg/agent"
	"github.com/louannemur/fleetd/pkg/config"
	"github.com/louannemur/fleetd/pkg/runner"
	"github.com/louannemur/fleetd/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.LoadRunner()
	llmCfg := config.Load().LLM

	slog.Info("Starting fleet-runner",
		"version", version.Full(),
		"name", cfg.Name,
		"working_dir", cfg.WorkingDir,
		"control_plane", cfg.ControlPlaneURL)

	if llmCfg.APIKey == "" {
		slog.Error("ANTHROPIC_API_KEY is required for the runner")
		os.Exit(1)
	}
	llm, err := agent.NewAnthropicClient(llmCfg.APIKey, llmCfg.Model)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client := runner.NewClient(cfg.ControlPlaneURL, cfg.Name, cfg.WorkingDir)
	if err := client.Register(ctx); err != nil {
		slog.Error("Failed to register with control plane", "error", err)
		os.Exit(2)
	}
	slog.Info("Registered with control plane")

	workerCfg := runner.DefaultWorkerConfig()
	workerCfg.PollInterval = cfg.PollInterval
	worker := runner.NewWorker(client, llm, cfg.WorkingDir, workerCfg)
	worker.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	worker.Stop()
	slog.Info("Shutdown complete", "tasks_processed", worker.TasksProcessed())
}
