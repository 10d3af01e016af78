package attendance

import "context"

// AttendanceService derives the monthly status grid and roll-ups from the
// tracked records and the company calendar. Same inputs, same outputs: the
// report is recomputed in full on every call.
type AttendanceService interface {
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)
}
