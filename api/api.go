package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func ResultData(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, ApiResponse{Data: obj})
}

func ResultCreated(c *gin.Context, obj any) {
	c.JSON(http.StatusCreated, ApiResponse{Data: obj})
}

func ResultNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ResultNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ApiResponse{Errors: []string{"notFound"}})
}

func ResultError(c *gin.Context, errors []string) {
	if len(errors) > 0 {
		c.JSON(http.StatusBadRequest, ApiResponse{Errors: errors})
	} else {
		c.JSON(http.StatusInternalServerError, ApiResponse{Errors: []string{"unknownError"}})
	}
}

func ResultCustomError(c *gin.Context, status int, errors []string) {
	c.JSON(status, ApiResponse{Errors: errors})
}
