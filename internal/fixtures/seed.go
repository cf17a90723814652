package fixtures

import (
	"time"

	"github.com/aicorp/command-center-go/internal/domain/attendance"
	"github.com/aicorp/command-center-go/internal/domain/employee"
	"github.com/aicorp/command-center-go/internal/domain/leave"
	"github.com/aicorp/command-center-go/internal/domain/policy"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// EMPLOYEES
// ==========================================

// Employees returns the default roster loaded at boot.
func Employees() []employee.Employee {
	joined := date(2022, time.June, 1)
	return []employee.Employee{
		{ID: "emp001", Name: "Dr. Evelyn Reed", Email: "e.reed@aicorp.com", Department: "AI Research", Role: "Lead Scientist", Status: employee.StatusActive, AvatarURL: strPtr("https://placehold.co/128x128/A78BFA/FFFFFF.png?text=ER"), CreatedAt: joined},
		{ID: "emp002", Name: "Marcus Chen", Email: "m.chen@aicorp.com", Department: "Engineering", Role: "Software Engineer", Status: employee.StatusActive, AvatarURL: strPtr("https://placehold.co/128x128/60A5FA/FFFFFF.png?text=MC"), CreatedAt: joined},
		{ID: "emp003", Name: "Aisha Khan", Email: "a.khan@aicorp.com", Department: "Product", Role: "Product Manager", Status: employee.StatusActive, AvatarURL: strPtr("https://placehold.co/128x128/F472B6/FFFFFF.png?text=AK"), CreatedAt: joined},
		{ID: "emp004", Name: "Leo Maxwell", Email: "l.maxwell@aicorp.com", Department: "Operations", Role: "System Administrator", Status: employee.StatusOnLeave, CreatedAt: joined},
		{ID: "emp005", Name: "Sophia Miller", Email: "s.miller@aicorp.com", Department: "Data Science", Role: "Data Analyst", Status: employee.StatusActive, AvatarURL: strPtr("https://placehold.co/128x128/34D399/FFFFFF.png?text=SM"), CreatedAt: joined},
		{ID: "emp006", Name: "Kenji Tanaka", Email: "k.tanaka@aicorp.com", Department: "Engineering", Role: "Senior Developer", Status: employee.StatusActive, CreatedAt: joined},
		{ID: "emp007", Name: "Isabelle Moreau", Email: "i.moreau@aicorp.com", Department: "AI Ethics", Role: "Ethics Officer", Status: employee.StatusActive, CreatedAt: joined},
		{ID: "emp008", Name: "David Kim", Email: "d.kim@aicorp.com", Department: "HR", Role: "HR Specialist", Status: employee.StatusTerminated, CreatedAt: joined},
		{ID: "emp009", Name: "Chloe Davis", Email: "c.davis@aicorp.com", Department: "Marketing", Role: "Marketing Lead", Status: employee.StatusActive, CreatedAt: joined},
		{ID: "emp010", Name: "Raj Patel", Email: "r.patel@aicorp.com", Department: "Engineering", Role: "DevOps Engineer", Status: employee.StatusActive, CreatedAt: joined},
	}
}

// ==========================================
// ASSETS
// ==========================================

// Assets returns the equipment assignments keyed by employee ID.
func Assets() map[string][]employee.Asset {
	return map[string][]employee.Asset{
		"emp001": {
			{
				AssetID: "lap001", EmployeeID: "emp001", Type: employee.AssetTypeLaptop,
				Name: "Dev Laptop XPS-15", Make: "Dell", Model: "XPS 15 9520",
				SerialNumber: strPtr("SN-XPS15-001"),
				Specifications: []employee.AssetSpecification{
					{Key: "CPU", Value: "Intel Core i9-12900HK"},
					{Key: "RAM", Value: "64GB DDR5"},
					{Key: "Storage", Value: "2TB NVMe SSD"},
					{Key: "GPU", Value: "NVIDIA GeForce RTX 3050 Ti"},
				},
				AssignedDate: date(2023, time.January, 10),
				PurchaseDate: timePtr(date(2022, time.December, 15)),
			},
			{
				AssetID: "mon001", EmployeeID: "emp001", Type: employee.AssetTypeMonitor,
				Name: "Primary Monitor U2723QE", Make: "Dell", Model: "UltraSharp U2723QE",
				Specifications: []employee.AssetSpecification{
					{Key: "Size", Value: "27-inch"},
					{Key: "Resolution", Value: "3840x2160 (4K)"},
					{Key: "Panel", Value: "IPS Black"},
				},
				AssignedDate: date(2023, time.January, 10),
			},
			{
				AssetID: "mou001", EmployeeID: "emp001", Type: employee.AssetTypeMouse,
				Name: "MX Master 3S", Make: "Logitech", Model: "MX Master 3S",
				Specifications: []employee.AssetSpecification{
					{Key: "Connectivity", Value: "Bluetooth, Logi Bolt"},
					{Key: "DPI", Value: "8000"},
				},
				AssignedDate: date(2023, time.January, 10),
			},
			{
				AssetID: "kbd002", EmployeeID: "emp001", Type: employee.AssetTypeKeyboard,
				Name: "MX Keys", Make: "Logitech", Model: "MX Keys",
				Specifications: []employee.AssetSpecification{
					{Key: "Type", Value: "Wireless"},
					{Key: "Backlight", Value: "Yes"},
				},
				AssignedDate: date(2023, time.January, 10),
			},
			{
				AssetID: "phn002", EmployeeID: "emp001", Type: employee.AssetTypeSmartphone,
				Name: "iPhone 15 Pro", Make: "Apple", Model: "iPhone 15 Pro",
				Specifications: []employee.AssetSpecification{
					{Key: "Storage", Value: "512GB"},
					{Key: "Color", Value: "Titanium Blue"},
				},
				AssignedDate: date(2023, time.September, 20),
			},
			{
				AssetID: "oth001", EmployeeID: "emp001", Type: employee.AssetTypeOther,
				Name: "Docking Station WD19S", Make: "Dell", Model: "WD19S",
				Specifications: []employee.AssetSpecification{
					{Key: "Ports", Value: "USB-C, HDMI, DP, Ethernet"},
				},
				AssignedDate: date(2023, time.January, 10),
			},
		},
		"emp002": {
			{
				AssetID: "lap002", EmployeeID: "emp002", Type: employee.AssetTypeLaptop,
				Name: "Zenbook Pro Duo", Make: "ASUS", Model: "UX582",
				SerialNumber: strPtr("SN-ZENBOOK-002"),
				Specifications: []employee.AssetSpecification{
					{Key: "CPU", Value: "Intel Core i7-11800H"},
					{Key: "RAM", Value: "32GB DDR4"},
					{Key: "Storage", Value: "1TB PCIe SSD"},
					{Key: "Display", Value: "Dual Screen"},
				},
				AssignedDate: date(2023, time.March, 15),
			},
			{
				AssetID: "kbd001", EmployeeID: "emp002", Type: employee.AssetTypeKeyboard,
				Name: "Mechanical Keyboard K2", Make: "Keychron", Model: "K2 (Version 2)",
				Specifications: []employee.AssetSpecification{
					{Key: "Switch Type", Value: "Gateron Brown"},
					{Key: "Layout", Value: "75%"},
				},
				AssignedDate: date(2023, time.March, 15),
			},
		},
		"emp005": {
			{
				AssetID: "lap003", EmployeeID: "emp005", Type: employee.AssetTypeLaptop,
				Name: "Surface Laptop 4", Make: "Microsoft", Model: "Surface Laptop 4",
				Specifications: []employee.AssetSpecification{
					{Key: "CPU", Value: "AMD Ryzen 7 4980U"},
					{Key: "RAM", Value: "16GB LPDDR4x"},
					{Key: "Storage", Value: "512GB SSD"},
				},
				AssignedDate: date(2022, time.August, 20),
			},
			{
				AssetID: "phn001", EmployeeID: "emp005", Type: employee.AssetTypeSmartphone,
				Name: "Pixel 7 Pro", Make: "Google", Model: "Pixel 7 Pro",
				Specifications: []employee.AssetSpecification{
					{Key: "Storage", Value: "256GB"},
					{Key: "Color", Value: "Obsidian"},
				},
				AssignedDate: date(2023, time.May, 1),
			},
		},
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

// AttendanceRecords returns two weeks of history for the active roster,
// anchored on now so the daily and monthly summaries have data on first
// load.
func AttendanceRecords(now time.Time) []attendance.Record {
	today := attendance.NormalizeDate(now)

	emails := []string{
		"e.reed@aicorp.com",
		"m.chen@aicorp.com",
		"a.khan@aicorp.com",
		"l.maxwell@aicorp.com",
		"s.miller@aicorp.com",
		"k.tanaka@aicorp.com",
		"i.moreau@aicorp.com",
		"c.davis@aicorp.com",
		"r.patel@aicorp.com",
	}

	var records []attendance.Record
	for back := 0; back < 14; back++ {
		day := today.AddDate(0, 0, -back)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for i, email := range emails {
			status := attendance.StatusPresent
			switch {
			case email == "l.maxwell@aicorp.com":
				status = attendance.StatusOnLeave
			case (back+i)%11 == 5:
				status = attendance.StatusAbsent
			case (back+i)%11 == 9:
				status = attendance.StatusHalfDay
			}
			records = append(records, attendance.Record{
				ID:            day.Format("20060102") + "-" + email,
				EmployeeEmail: email,
				Date:          day,
				Status:        status,
				CreatedAt:     day,
			})
		}
	}
	return records
}

// ==========================================
// LEAVE
// ==========================================

// LeaveRequests returns the initial request list, including the request
// backing Leo Maxwell's "On Leave" roster status.
func LeaveRequests(now time.Time) []leave.Request {
	today := attendance.NormalizeDate(now)
	return []leave.Request{
		{
			ID:            "lv001",
			EmployeeEmail: "l.maxwell@aicorp.com",
			Type:          leave.TypeAnnual,
			StartDate:     today.AddDate(0, 0, -7),
			EndDate:       today.AddDate(0, 0, 7),
			Reason:        "Family visit abroad",
			Status:        leave.RequestStatusApproved,
			DecidedBy:     strPtr("admin"),
			DecidedAt:     timePtr(today.AddDate(0, 0, -9)),
			CreatedAt:     today.AddDate(0, 0, -10),
		},
		{
			ID:            "lv002",
			EmployeeEmail: "m.chen@aicorp.com",
			Type:          leave.TypeSick,
			StartDate:     today.AddDate(0, 0, 1),
			EndDate:       today.AddDate(0, 0, 2),
			Reason:        "Dental surgery recovery",
			Status:        leave.RequestStatusPending,
			CreatedAt:     today,
		},
	}
}

// ==========================================
// POLICIES
// ==========================================

// PolicyDocuments returns the compiled-in policy library.
func PolicyDocuments() []policy.Document {
	updated := date(2024, time.January, 15)
	return []policy.Document{
		{
			ID:       "pol001",
			Title:    "Code of Conduct",
			Category: "HR",
			Summary:  "Expected professional behavior, anti-harassment rules, and reporting channels.",
			Body: "All employees are expected to act with integrity and treat colleagues, " +
				"partners, and customers with respect. Harassment, discrimination, and " +
				"retaliation are prohibited. Concerns can be raised with HR or through the " +
				"anonymous reporting line; every report is investigated.",
			UpdatedAt: updated,
		},
		{
			ID:       "pol002",
			Title:    "IT Security Guidelines",
			Category: "Security",
			Summary:  "Account security, device handling, and incident reporting requirements.",
			Body: "Use a unique passphrase and multi-factor authentication on all company " +
				"accounts. Company devices must be encrypted and locked when unattended. " +
				"Suspected phishing or account compromise must be reported to the security " +
				"team within one hour of discovery.",
			UpdatedAt: updated,
		},
		{
			ID:       "pol003",
			Title:    "Leave and Attendance Policy",
			Category: "HR",
			Summary:  "Leave allowances, request workflow, and attendance recording rules.",
			Body: "Employees receive 20 annual leave days and 10 sick days per calendar year. " +
				"Leave requests are submitted through the console and require manager " +
				"approval. Attendance is recorded daily; half days count toward presence " +
				"statistics separately.",
			UpdatedAt: updated,
		},
		{
			ID:       "pol004",
			Title:    "Responsible AI Use",
			Category: "AI Ethics",
			Summary:  "Guardrails for using generative models in internal tooling.",
			Body: "Generative model output is advisory and must never be the sole basis for " +
				"an action affecting an employee or customer. Prompts must not include " +
				"secrets or personal data beyond what the task requires. Model verdicts " +
				"are logged for audit.",
			UpdatedAt: updated,
		},
	}
}
