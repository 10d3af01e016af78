package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/timecore-backend-go/internal/domain/attendance"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/domain/employee"
	"github.com/tracklabs/timecore-backend-go/internal/fixtures"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.DailyRecordRepository
	employee.EmployeeRepository
	company.CalendarRepository
	clk clock.Clock
}

func NewAttendanceService(
	recordRepo attendance.DailyRecordRepository,
	employeeRepo employee.EmployeeRepository,
	calendarRepo company.CalendarRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		DailyRecordRepository: recordRepo,
		EmployeeRepository:    employeeRepo,
		CalendarRepository:    calendarRepo,
		clk:                   clk,
	}
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, req attendance.MonthlyReportRequest) (attendance.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	monthStart, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return attendance.MonthlyReportResponse{}, attendance.ErrInvalidMonth
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	settings, err := a.CalendarRepository.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			// A company that never touched its calendar runs on the defaults.
			settings = fixtures.DefaultCalendarSettings(companyID)
		} else {
			return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to get calendar settings: %w", err)
		}
	}
	if err := settings.WeekendPolicy.Validate(); err != nil {
		return attendance.MonthlyReportResponse{}, err
	}
	if settings.Thresholds.HalfDay > settings.Thresholds.FullDay {
		return attendance.MonthlyReportResponse{}, company.ErrInvalidThresholds
	}

	holidays, err := a.CalendarRepository.ListHolidays(ctx, companyID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	employees, err := a.reportEmployees(ctx, companyID, req.EmployeeID)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	records, err := a.DailyRecordRepository.ListForMonth(ctx, companyID, monthStart, monthEnd, req.EmployeeID)
	if err != nil {
		return attendance.MonthlyReportResponse{}, fmt.Errorf("failed to list daily records: %w", err)
	}

	recordsByEmployee := make(map[string][]attendance.DailyRecord)
	for _, r := range records {
		recordsByEmployee[r.EmployeeID] = append(recordsByEmployee[r.EmployeeID], r)
	}

	cal := NewCalendar(settings, holidays)
	today := a.clk.Now()

	resp := attendance.MonthlyReportResponse{
		Month:     req.Month,
		Employees: make([]attendance.EmployeeAttendanceResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		days, summary := BuildMonthlyGrid(monthStart, emp.ID, recordsByEmployee[emp.ID], cal, today)
		resp.Employees = append(resp.Employees, mapEmployeeAttendance(emp, days, summary))
	}

	return resp, nil
}

func (a *AttendanceServiceImpl) reportEmployees(ctx context.Context, companyID string, employeeID *string) ([]employee.Employee, error) {
	if employeeID != nil {
		emp, err := a.EmployeeRepository.GetByID(ctx, *employeeID, companyID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, employee.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to get employee: %w", err)
		}
		return []employee.Employee{emp}, nil
	}

	emps, err := a.EmployeeRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

func mapEmployeeAttendance(emp employee.Employee, days []attendance.DayStatus, summary attendance.MonthlyAttendanceSummary) attendance.EmployeeAttendanceResponse {
	dayResponses := make([]attendance.DayStatusResponse, 0, len(days))
	for _, day := range days {
		r := attendance.DayStatusResponse{
			Date:   day.Date.Format("2006-01-02"),
			Status: string(day.Kind),
			Worked: day.Worked.String(),
		}
		if day.HolidayName != "" {
			name := day.HolidayName
			r.HolidayName = &name
		}
		dayResponses = append(dayResponses, r)
	}

	return attendance.EmployeeAttendanceResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		AvatarURL:    emp.AvatarURL,
		Days:         dayResponses,
		Summary: attendance.MonthlySummaryResponse{
			TotalWorkingDays: summary.TotalWorkingDays,
			TotalPresent:     summary.TotalPresent,
			TotalHalfDays:    summary.TotalHalfDays,
			TotalAbsent:      summary.TotalAbsent,
			TotalWorked:      summary.TotalWorked.String(),
		},
	}
}
