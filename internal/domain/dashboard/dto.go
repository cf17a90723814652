package dashboard

// DashboardResponse is the combined response for the console's landing view.
type DashboardResponse struct {
	EmployeeSummary   EmployeeSummaryResponse   `json:"employee_summary"`
	TodayAttendance   TodayAttendanceResponse   `json:"today_attendance"`
	MonthlyAttendance MonthlyAttendanceResponse `json:"monthly_attendance"`
	PendingLeave      PendingLeaveResponse      `json:"pending_leave"`
}

type EmployeeSummaryResponse struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	OnLeave    int `json:"on_leave"`
	Terminated int `json:"terminated"`
}

type TodayAttendanceResponse struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	OnLeave int    `json:"on_leave"`
	HalfDay int    `json:"half_day"`
	Total   int    `json:"total"`
}

type MonthlyAttendanceResponse struct {
	Month   string                 `json:"month"` // YYYY-MM
	Present int                    `json:"present"`
	Absent  int                    `json:"absent"`
	OnLeave int                    `json:"on_leave"`
	HalfDay int                    `json:"half_day"`
	Records []AttendanceRecordItem `json:"records"` // latest entries
}

type AttendanceRecordItem struct {
	No            int    `json:"no"`
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

type PendingLeaveResponse struct {
	Count int `json:"count"`
}
