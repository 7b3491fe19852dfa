package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/louannemur/fleetd/pkg/models"
)

// Verify handles POST /api/verify. The pipeline runs synchronously; callers
// should budget for the test stage.
func (s *Server) Verify(c *gin.Context) {
	var req models.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.TaskID == "" || req.WorkingDir == "" {
		badRequest(c, "taskId and workingDir are required")
		return
	}
	result, err := s.verifier.Verify(c.Request.Context(), req.TaskID, req.WorkingDir)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, result)
}

// VerificationResults handles GET /api/verify/:taskId.
func (s *Server) VerificationResults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	results, err := s.tasks.VerificationResults(c.Request.Context(), c.Param("taskId"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, results)
}
