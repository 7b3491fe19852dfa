package api

import (
	"github.com/gin-gonic/gin"

	"github.com/louannemur/fleetd/pkg/models"
)

// RegisterRunner handles POST /api/runner/register.
func (s *Server) RegisterRunner(c *gin.Context) {
	var req models.RegisterRunnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	resp, err := s.runners.Register(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, resp)
}

// RunnerStatus handles GET /api/runner/status.
func (s *Server) RunnerStatus(c *gin.Context) {
	token := c.Query("runnerToken")
	if token == "" {
		badRequest(c, "runnerToken query parameter is required")
		return
	}
	resp, err := s.runners.Status(c.Request.Context(), token)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, resp)
}

// Claim handles POST /api/runner/claim.
func (s *Server) Claim(c *gin.Context) {
	var req models.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	resp, err := s.runners.Claim(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, resp)
}

// Heartbeat handles POST /api/runner/heartbeat.
func (s *Server) Heartbeat(c *gin.Context) {
	var req models.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	resp, _, err := s.runners.Heartbeat(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, resp)
}

// AppendLogs handles POST /api/runner/logs.
func (s *Server) AppendLogs(c *gin.Context) {
	var req models.AppendLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := s.runners.AppendLogs(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, gin.H{"appended": len(req.Logs)})
}

// Complete handles POST /api/runner/complete.
func (s *Server) Complete(c *gin.Context) {
	var req models.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := s.runners.Complete(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, gin.H{"finalized": true})
}

// AcquireLocks handles POST /api/runner/locks/acquire.
func (s *Server) AcquireLocks(c *gin.Context) {
	var req models.AcquireLocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	resp, err := s.runners.AcquireLocks(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, resp)
}

// ReleaseLocks handles POST /api/runner/locks/release.
func (s *Server) ReleaseLocks(c *gin.Context) {
	var req models.ReleaseLocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := s.runners.ReleaseLocks(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, gin.H{"released": true})
}
