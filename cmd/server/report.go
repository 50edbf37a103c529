package main

import (
	"context"
	"encoding/json"

	"github.com/dom/timesheet/internal/api/handlers"
	"github.com/dom/timesheet/internal/service"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <userId> <YYYY-MM>",
	Short: "Print a user's month report as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(false)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
		defer cancel()

		svc := service.NewTimeSheetService(a.repos.DayRecord, a.log)
		report, err := svc.GetMonthReport(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(handlers.ToMonthReportResponse(report))
	},
}
