// Package export renders month reports as spreadsheets.
package export

import (
	"fmt"

	"github.com/dom/timesheet/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Folha de ponto"
)

var dayHeadings = []string{"Dia", "Ponto 1", "Ponto 2", "Ponto 3", "Ponto 4", "Horas trabalhadas"}

// MonthReportWorkbook lays out a month report on a single sheet: a summary
// block followed by one row per worked day. The caller closes the file.
func MonthReportWorkbook(report *domain.MonthReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	summary := [][2]string{
		{"Mês", report.YearMonth.String()},
		{"Horas trabalhadas", domain.FormatISODuration(report.Worked)},
		{"Horas excedentes", domain.FormatISODuration(report.Overtime)},
		{"Horas devidas", domain.FormatISODuration(report.Deficit)},
	}
	for i, row := range summary {
		if err := setRow(f, i+1, row[0], row[1]); err != nil {
			f.Close()
			return nil, err
		}
	}

	headerRow := len(summary) + 2
	if err := setRow(f, headerRow, toAny(dayHeadings)...); err != nil {
		f.Close()
		return nil, err
	}

	for i, day := range report.Days {
		values := make([]any, len(dayHeadings))
		values[0] = day.Date
		for j := 0; j < domain.MaxEntriesPerDay; j++ {
			values[j+1] = ""
			if j < len(day.Entries) {
				values[j+1] = day.Entries[j]
			}
		}
		values[len(values)-1] = domain.FormatISODuration(day.Worked)

		if err := setRow(f, headerRow+1+i, values...); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
