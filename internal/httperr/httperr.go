package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// ======================================================
// Mapeamento de erros de use case
// ======================================================

var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"validation_failed":      "Dados inválidos.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"invalid_date":           "Data inválida.",
	"invalid_time_range":     "O horário de início deve ser anterior ao de término.",
	"invalid_timezone":       "Fuso horário inválido.",
	"invalid_duration":       "Duração inválida.",
	"start_and_end_required": "Informe início e término juntos.",
	"invalid_status":         "Status inválido.",
	"invalid_form_data":      "Dados do formulário inválidos.",
	"inconsistent_status":    "Status e cancelamento inconsistentes.",
	"invalid_state":          "Ação não permitida para o status atual.",
	"booking_option_invalid": "Opção de agendamento inválida para este evento.",
	"event_not_found":        "Evento não encontrado.",
	"booking_not_found":      "Agendamento não encontrado.",
	"slot_unavailable":       "Horário indisponível.",
	"no_schedule":            "O evento não possui agenda configurada.",
	"booking_in_progress":    "Outro agendamento está em andamento, tente novamente.",
	"user_ids_required":      "Informe ao menos um usuário.",
	"invalid_user_id":        "Usuário inválido.",
}

func messageFor(code string, kind Kind) string {
	if m, ok := messages[code]; ok {
		return m
	}

	switch kind {
	case KindNotFound:
		return "Recurso não encontrado."
	case KindSchedulingConflict:
		return "Conflito de horário."
	default:
		return "Dados inválidos."
	}
}

// FromError responde o erro de acordo com o tipo. Erros internos são
// registrados no log e nunca expõem detalhes ao cliente.
func FromError(c *gin.Context, log *zap.Logger, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Error("request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
		)
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	status := http.StatusBadRequest
	switch be.Kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindSchedulingConflict:
		status = http.StatusConflict
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: messageFor(be.Code, be.Kind),
		Details: be.Details,
	})
}
