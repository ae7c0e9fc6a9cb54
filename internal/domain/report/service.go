package report

import "context"

type ReportService interface {
	Hours(ctx context.Context, filter HoursFilter) (HoursReportResponse, error)
}
