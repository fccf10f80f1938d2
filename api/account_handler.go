package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

func (h *AccountHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/me", h.GetActor)
}

// GetActor returns the caller as seen by the booking API.
func (h *AccountHandler) GetActor(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, actorFrom(c))
}
