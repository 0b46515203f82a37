package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/tiozaobarbearia/agenda-api/internal/domain/booking"
	"github.com/tiozaobarbearia/agenda-api/internal/httpresp"
)

// ServiceHandler exposes the shop's price list for the picker screen.
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, domain.Services)
}
