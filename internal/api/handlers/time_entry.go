package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dom/timesheet/internal/api/middleware"
	"github.com/dom/timesheet/internal/api/response"
	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/service"
	"go.uber.org/zap"
)

type TimeEntryHandler struct {
	timeEntryService *service.TimeEntryService
	log              *zap.Logger
}

func NewTimeEntryHandler(timeEntryService *service.TimeEntryService, log *zap.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: timeEntryService,
		log:              log,
	}
}

type CreateTimeEntryRequest struct {
	Momento string `json:"momento"`
}

// DayRecordResponse is a day record as returned to clients.
type DayRecordResponse struct {
	Dia    string   `json:"dia"`
	Pontos []string `json:"pontos"`
}

func toDayRecordResponse(day *domain.DayRecord) DayRecordResponse {
	return DayRecordResponse{
		Dia:    day.Date,
		Pontos: day.Clock(),
	}
}

func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, "timeEntry.Create", domain.ErrInvalidFormat)
		return
	}

	day, err := h.timeEntryService.AddTimeEntry(r.Context(), userID, req.Momento)
	if err != nil {
		writeError(w, h.log, "timeEntry.Create", err)
		return
	}

	response.JSON(w, http.StatusCreated, toDayRecordResponse(day))
}
