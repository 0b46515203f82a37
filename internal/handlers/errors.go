package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/store"
)

// respondError translates core errors into HTTP responses. Business codes
// stay machine-readable; the message is the user-facing text the app shows
// in its snackbar.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		httperr.Unavailable(c, "storage_unavailable", "Armazenamento indisponível. Tente novamente.")
		return
	}

	switch code := httperr.BusinessCode(err); code {
	case "missing_date":
		httperr.BadRequest(c, code, "Selecione uma data.")
	case "missing_slot":
		httperr.BadRequest(c, code, "Selecione um horário.")
	case "past_date":
		httperr.BadRequest(c, code, "Não é possível agendar em datas passadas.")
	case "slot_taken":
		httperr.BadRequest(c, code, "Horário indisponível nesta data.")
	case "invalid_date", "unknown_slot":
		httperr.BadRequest(c, code, "Data ou horário inválido.")
	case "missing_customer":
		httperr.BadRequest(c, code, "Usuário não informado.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Este agendamento não pode ser cancelado.")
	case "duplicate_user":
		httperr.BadRequest(c, code, "Usuário já existe.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "":
		httperr.Internal(c, "internal_error", "Erro interno.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}
