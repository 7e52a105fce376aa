package modules

import (
	"github.com/gin-gonic/gin"

	handlers "user-registration-service/internal/interface/http"
)

// UserModule wires the user HTTP handlers into routes under /api/v1.
// Public: POST /api/v1/users/register

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/register", m.Handler.Register)
}
