package router

import "github.com/gin-gonic/gin"

// Module is a feature area that knows how to mount its own routes. The
// registry collects modules and registers them under the versioned API
// group, keeping route wiring out of main.
type Module interface {
	Register(rg *gin.RouterGroup)
}
