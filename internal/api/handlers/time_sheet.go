package handlers

import (
	"fmt"
	"net/http"

	"github.com/dom/timesheet/internal/api/middleware"
	"github.com/dom/timesheet/internal/api/response"
	"github.com/dom/timesheet/internal/domain"
	"github.com/dom/timesheet/internal/export"
	"github.com/dom/timesheet/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimeSheetHandler struct {
	timeSheetService *service.TimeSheetService
	log              *zap.Logger
}

func NewTimeSheetHandler(timeSheetService *service.TimeSheetService, log *zap.Logger) *TimeSheetHandler {
	return &TimeSheetHandler{
		timeSheetService: timeSheetService,
		log:              log,
	}
}

type MonthReportResponse struct {
	AnoMes           string              `json:"anoMes"`
	HorasTrabalhadas string              `json:"horasTrabalhadas"`
	HorasExcedentes  string              `json:"horasExcedentes"`
	HorasDevidas     string              `json:"horasDevidas"`
	Expedientes      []DayRecordResponse `json:"expedientes"`
}

// ToMonthReportResponse renders a report with ISO 8601 durations.
func ToMonthReportResponse(report *domain.MonthReport) MonthReportResponse {
	resp := MonthReportResponse{
		AnoMes:           report.YearMonth.String(),
		HorasTrabalhadas: domain.FormatISODuration(report.Worked),
		HorasExcedentes:  domain.FormatISODuration(report.Overtime),
		HorasDevidas:     domain.FormatISODuration(report.Deficit),
		Expedientes:      make([]DayRecordResponse, len(report.Days)),
	}
	for i, d := range report.Days {
		resp.Expedientes[i] = DayRecordResponse{Dia: d.Date, Pontos: d.Entries}
	}
	return resp
}

func (h *TimeSheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	month := chi.URLParam(r, "anoMes")

	report, err := h.timeSheetService.GetMonthReport(r.Context(), userID, month)
	if err != nil {
		writeError(w, h.log, "timeSheet.Get", err)
		return
	}

	response.JSON(w, http.StatusOK, ToMonthReportResponse(report))
}

func (h *TimeSheetHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	month := chi.URLParam(r, "anoMes")

	report, err := h.timeSheetService.GetMonthReport(r.Context(), userID, month)
	if err != nil {
		writeError(w, h.log, "timeSheet.Export", err)
		return
	}

	f, err := export.MonthReportWorkbook(report)
	if err != nil {
		writeError(w, h.log, "timeSheet.Export", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=folha-de-ponto-%s.xlsx", report.YearMonth))
	if err := f.Write(w); err != nil {
		h.log.Error("failed to write workbook", zap.String("month", month), zap.Error(err))
	}
}
