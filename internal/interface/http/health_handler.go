package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Greeting handles GET / as a liveness check.
func Greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}
