package runner

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/louannemur/fleetd/pkg/agent"
	"github.com/louannemur/fleetd/pkg/agent/tools"
)

// WorkerConfig tunes the polling loop.
type WorkerConfig struct {
	PollInterval       time.Duration
	PollIntervalJitter time.Duration
	LoopConfig         agent.Config
}

// DefaultWorkerConfig returns the standard polling cadence.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:       5 * time.Second,
		PollIntervalJitter: time.Second,
	}
}

// Worker polls the control plane for queued tasks and runs one agent loop
// at a time in the configured working directory.
type Worker struct {
	client     *Client
	llm        agent.LLMClient
	workingDir string
	config     WorkerConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu             sync.RWMutex
	currentAgentID string
	tasksProcessed int
}

// NewWorker creates a worker over a registered client.
func NewWorker(client *Client, llm agent.LLMClient, workingDir string, cfg WorkerConfig) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultWorkerConfig().PollInterval
	}
	return &Worker{
		client:     client,
		llm:        llm,
		workingDir: workingDir,
		config:     cfg,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current task to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// TasksProcessed reports how many loops this worker has run.
func (w *Worker) TasksProcessed() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tasksProcessed
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("component", "runner", "working_dir", w.workingDir)
	log.Info("Runner worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Runner worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, runner worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
				continue
			}
			w.sleep(w.pollInterval())
		}
	}
}

// pollAndProcess claims at most one task and drives its loop to completion.
// An empty queue is not an error.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	count, err := w.client.QueuedCount(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	claim, err := w.client.Claim(ctx)
	if err != nil {
		return err
	}
	if claim.Task == nil || claim.Agent == nil {
		return nil // lost the race to another runner
	}

	log := slog.With("task_id", claim.Task.ID, "agent_id", claim.Agent.ID)
	log.Info("Task claimed", "title", claim.Task.Title)

	w.setCurrent(claim.Agent.ID)
	defer w.setCurrent("")

	cp := NewControlPlane(w.client, claim.Agent.ID, claim.Task.ID)
	executor := tools.NewExecutor(w.workingDir, cp)
	loop := agent.NewLoop(w.llm, executor, cp, agent.Task{
		ID:          claim.Task.ID,
		Title:       claim.Task.Title,
		Description: claim.Task.Description,
		RiskLevel:   claim.Task.RiskLevel,
		FilesHint:   claim.Task.FilesHint,
		BranchName:  claim.Agent.BranchName,
	}, w.config.LoopConfig)

	if err := loop.Run(ctx); err != nil {
		log.Error("Agent loop reported an error", "error", err)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete")
	return nil
}

func (w *Worker) setCurrent(agentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentAgentID = agentID
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
