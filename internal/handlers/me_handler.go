package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tiozaobarbearia/agenda-api/internal/httpresp"
	"github.com/tiozaobarbearia/agenda-api/internal/middleware"
	ucBooking "github.com/tiozaobarbearia/agenda-api/internal/usecase/booking"
)

type MeHandler struct {
	listUC *ucBooking.ListByCustomer
}

func NewMeHandler(listUC *ucBooking.ListByCustomer) *MeHandler {
	return &MeHandler{listUC: listUC}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	appointments, err := h.listUC.Execute(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"username":     username,
		"appointments": len(appointments),
	})
}
