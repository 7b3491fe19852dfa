package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dataResponse is the success envelope.
type dataResponse struct {
	Data interface{} `json:"data"`
}

// errorResponse is the failure envelope.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, dataResponse{Data: v})
}

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, errorResponse{Error: kind, Message: message})
}

func badRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "bad_request", message)
}
