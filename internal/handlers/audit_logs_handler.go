package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiozaobarbearia/agenda-api/internal/audit"
	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/httpresp"
	"github.com/tiozaobarbearia/agenda-api/internal/middleware"
)

const defaultAuditLimit = 50

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

// List returns the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido.")
			return
		}
		limit = n
	}

	entries, err := h.logger.List(username, limit)
	if err != nil {
		httperr.Internal(c, "audit_read_failed", "Erro ao ler auditoria.")
		return
	}

	httpresp.List(c, entries)
}
