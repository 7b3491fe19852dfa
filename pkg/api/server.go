// Package api is the HTTP boundary: gin handlers over the service layer,
// service-error mapping, and the JSON envelope the runners and operator
// tooling consume.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/louannemur/fleetd/pkg/database"
	"github.com/louannemur/fleetd/pkg/services"
	"github.com/louannemur/fleetd/pkg/verifier"
)

// Server wires the HTTP surface to the service layer.
type Server struct {
	db         *database.Client
	tasks      *services.TaskService
	agents     *services.AgentService
	runners    *services.RunnerService
	exceptions *services.ExceptionService
	verifier   *verifier.Service
}

// NewServer creates a new API server.
func NewServer(
	db *database.Client,
	tasks *services.TaskService,
	agents *services.AgentService,
	runners *services.RunnerService,
	exceptions *services.ExceptionService,
	verif *verifier.Service,
) *Server {
	return &Server{
		db:         db,
		tasks:      tasks,
		agents:     agents,
		runners:    runners,
		exceptions: exceptions,
		verifier:   verif,
	}
}

// Engine builds the router with all routes registered.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/api/health", s.Health)

	runner := r.Group("/api/runner")
	{
		runner.POST("/register", s.RegisterRunner)
		// The wire contract overloads /status: POST registers, GET polls.
		runner.POST("/status", s.RegisterRunner)
		runner.GET("/status", s.RunnerStatus)
		runner.POST("/claim", s.Claim)
		runner.POST("/heartbeat", s.Heartbeat)
		runner.POST("/logs", s.AppendLogs)
		runner.POST("/complete", s.Complete)
		runner.POST("/locks/acquire", s.AcquireLocks)
		runner.POST("/locks/release", s.ReleaseLocks)
	}

	tasks := r.Group("/api/tasks")
	{
		tasks.POST("", s.CreateTask)
		tasks.GET("", s.ListTasks)
		tasks.GET("/:id", s.GetTask)
		tasks.PATCH("/:id", s.UpdateTask)
		tasks.POST("/:id/run", s.RunTask)
		tasks.POST("/:id/retry", s.RetryTask)
		tasks.POST("/:id/auto-retry", s.AutoRetryTask)
		tasks.POST("/:id/cancel", s.CancelTask)
	}

	r.POST("/api/verify", s.Verify)
	r.GET("/api/verify/:taskId", s.VerificationResults)

	agents := r.Group("/api/agents")
	{
		agents.GET("", s.ListAgents)
		agents.GET("/:id", s.GetAgent)
		agents.GET("/:id/logs", s.AgentLogs)
		agents.POST("/:id/pause", s.PauseAgent)
		agents.POST("/:id/resume", s.ResumeAgent)
		agents.POST("/:id/stop", s.StopAgent)
	}

	exceptions := r.Group("/api/exceptions")
	{
		exceptions.GET("", s.ListExceptions)
		exceptions.POST("/:id/ack", s.AcknowledgeException)
		exceptions.POST("/:id/resolve", s.ResolveException)
		exceptions.POST("/:id/dismiss", s.DismissException)
	}

	return r
}

// Health reports liveness, including database pool health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
