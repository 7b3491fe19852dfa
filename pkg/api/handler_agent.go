package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListAgents handles GET /api/agents.
func (s *Server) ListAgents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := s.agents.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, list)
}

// GetAgent handles GET /api/agents/:id.
func (s *Server) GetAgent(c *gin.Context) {
	ag, err := s.agents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, ag)
}

// AgentLogs handles GET /api/agents/:id/logs.
func (s *Server) AgentLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	logs, err := s.agents.Logs(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, logs)
}

// PauseAgent handles POST /api/agents/:id/pause.
func (s *Server) PauseAgent(c *gin.Context) {
	ag, err := s.agents.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, ag)
}

// ResumeAgent handles POST /api/agents/:id/resume.
func (s *Server) ResumeAgent(c *gin.Context) {
	ag, err := s.agents.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, ag)
}

// StopAgent handles POST /api/agents/:id/stop.
func (s *Server) StopAgent(c *gin.Context) {
	ag, err := s.agents.Stop(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, ag)
}
