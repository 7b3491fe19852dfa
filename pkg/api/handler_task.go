package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/louannemur/fleetd/pkg/models"
)

// CreateTask handles POST /api/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	t, err := s.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// ListTasks handles GET /api/tasks.
func (s *Server) ListTasks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := s.tasks.ListTasks(c.Request.Context(), models.ListTasksParams{
		Status: c.Query("status"),
		Limit:  limit,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, list)
}

// GetTask handles GET /api/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// UpdateTask handles PATCH /api/tasks/:id.
func (s *Server) UpdateTask(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	t, err := s.tasks.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// RunTask handles POST /api/tasks/:id/run.
func (s *Server) RunTask(c *gin.Context) {
	var req models.RunTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	t, err := s.tasks.Run(c.Request.Context(), c.Param("id"), req.WorkingDir)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// RetryTask handles POST /api/tasks/:id/retry.
func (s *Server) RetryTask(c *gin.Context) {
	t, err := s.tasks.Retry(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// AutoRetryTask handles POST /api/tasks/:id/auto-retry.
func (s *Server) AutoRetryTask(c *gin.Context) {
	t, err := s.tasks.AutoRetry(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}

// CancelTask handles POST /api/tasks/:id/cancel.
func (s *Server) CancelTask(c *gin.Context) {
	t, err := s.tasks.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, t)
}
