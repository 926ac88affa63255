package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondList[T any](c *gin.Context, items []T) {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, Envelope{Success: true, Count: &n, Data: items})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Error: msg})
}
