package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/timesheet/internal/api/response"
	"github.com/dom/timesheet/internal/domain"
	"go.uber.org/zap"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{domain.ErrMissingField, http.StatusBadRequest, "Campo obrigatório não informado"},
	{domain.ErrInvalidFormat, http.StatusBadRequest, "Data e hora em formato inválido"},
	{domain.ErrWeekendEntry, http.StatusBadRequest, "Sábado e domingo não são permitidos como dia de trabalho"},
	{domain.ErrMaxEntries, http.StatusBadRequest, "Apenas 4 horários podem ser registrados por dia"},
	{domain.ErrDuplicateEntry, http.StatusConflict, "Horário já registrado"},
	{domain.ErrLunchViolation, http.StatusBadRequest, "Deve haver no mínimo 1 hora de almoço"},
	{domain.ErrInvalidMonthFormat, http.StatusBadRequest, "Formato inválido"},
	{domain.ErrMonthNotFound, http.StatusNotFound, "Relatório não encontrado"},
}

const internalErrorMessage = "Erro interno"

// statusFor maps err to an HTTP status and response message. Errors that
// are not rejections map to 500.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func writeError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("op", op), zap.Error(err))
	}
	response.Error(w, status, message)
}
