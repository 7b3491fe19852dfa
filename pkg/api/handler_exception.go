package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListExceptions handles GET /api/exceptions.
func (s *Server) ListExceptions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := s.exceptions.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, list)
}

// AcknowledgeException handles POST /api/exceptions/:id/ack.
func (s *Server) AcknowledgeException(c *gin.Context) {
	exc, err := s.exceptions.Acknowledge(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, exc)
}

// ResolveException handles POST /api/exceptions/:id/resolve.
func (s *Server) ResolveException(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			badRequest(c, "invalid request body: "+err.Error())
			return
		}
	}
	exc, err := s.exceptions.Resolve(c.Request.Context(), c.Param("id"), body.Notes)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, exc)
}

// DismissException handles POST /api/exceptions/:id/dismiss.
func (s *Server) DismissException(c *gin.Context) {
	exc, err := s.exceptions.Dismiss(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondData(c, exc)
}
