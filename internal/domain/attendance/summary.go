package attendance

import (
	"log/slog"
	"sort"
	"time"
)

// Summary tallies records by status. The four counters of a summary always
// sum to the number of records that contributed to it.
type Summary struct {
	Present int
	Absent  int
	OnLeave int
	HalfDay int
}

// add increments the counter for st. Unknown statuses are not counted and
// add reports false so callers can account for the skip.
func (s *Summary) add(st Status) bool {
	switch st {
	case StatusPresent:
		s.Present++
	case StatusAbsent:
		s.Absent++
	case StatusOnLeave:
		s.OnLeave++
	case StatusHalfDay:
		s.HalfDay++
	default:
		return false
	}
	return true
}

// Total returns the sum of all four counters.
func (s Summary) Total() int {
	return s.Present + s.Absent + s.OnLeave + s.HalfDay
}

// MonthlySummary is a Summary for one calendar month.
type MonthlySummary struct {
	Year  int
	Month time.Month
	Summary
}

// MonthKey returns the month in "YYYY-MM" form.
func (m MonthlySummary) MonthKey() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// UserMonthlySummary is a Summary for one employee within one calendar month.
type UserMonthlySummary struct {
	Year          int
	Month         time.Month
	EmployeeEmail string
	Summary
}

// MonthKey returns the month in "YYYY-MM" form.
func (m UserMonthlySummary) MonthKey() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// DailySummary folds the records matching day's calendar date into a Summary.
// Records on other days never contribute. Records with a status outside the
// enum are skipped rather than aborting the fold.
func DailySummary(records []Record, day time.Time) Summary {
	var summary Summary
	skipped := 0
	for _, rec := range records {
		if !SameDay(rec.Date, day) {
			continue
		}
		if !summary.add(rec.Status) {
			skipped++
		}
	}
	if skipped > 0 {
		slog.Warn("daily summary skipped records with unknown status", "count", skipped, "date", day.Format("2006-01-02"))
	}
	return summary
}

// MonthlySummaries partitions records by (year, month) and tallies each
// group, newest month first. Every record with a known status lands in
// exactly one group.
func MonthlySummaries(records []Record) []MonthlySummary {
	groups := make(map[int]*MonthlySummary)
	skipped := 0
	for _, rec := range records {
		key := monthOrdinal(rec.Date)
		group, ok := groups[key]
		if !ok {
			group = &MonthlySummary{Year: rec.Date.Year(), Month: rec.Date.Month()}
			groups[key] = group
		}
		if !group.add(rec.Status) {
			skipped++
		}
	}
	if skipped > 0 {
		slog.Warn("monthly summary skipped records with unknown status", "count", skipped)
	}

	keys := make([]int, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	result := make([]MonthlySummary, 0, len(keys))
	for _, key := range keys {
		result = append(result, *groups[key])
	}
	return result
}

// UserMonthlySummaries partitions records by (year, month) and then by
// employee email within each month. Months are ordered newest first,
// employees alphabetically by email within a month.
func UserMonthlySummaries(records []Record) []UserMonthlySummary {
	type userKey struct {
		month int
		email string
	}
	groups := make(map[userKey]*UserMonthlySummary)
	skipped := 0
	for _, rec := range records {
		key := userKey{month: monthOrdinal(rec.Date), email: rec.EmployeeEmail}
		group, ok := groups[key]
		if !ok {
			group = &UserMonthlySummary{
				Year:          rec.Date.Year(),
				Month:         rec.Date.Month(),
				EmployeeEmail: rec.EmployeeEmail,
			}
			groups[key] = group
		}
		if !group.add(rec.Status) {
			skipped++
		}
	}
	if skipped > 0 {
		slog.Warn("per-employee monthly summary skipped records with unknown status", "count", skipped)
	}

	keys := make([]userKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month > keys[j].month
		}
		return keys[i].email < keys[j].email
	})

	result := make([]UserMonthlySummary, 0, len(keys))
	for _, key := range keys {
		result = append(result, *groups[key])
	}
	return result
}

// Matching returns the records satisfying pred, in the order encountered.
func Matching(records []Record, pred func(Record) bool) []Record {
	var result []Record
	for _, rec := range records {
		if pred(rec) {
			result = append(result, rec)
		}
	}
	return result
}

// Insert places rec into records keeping the list sorted by date descending.
// A record dated the same day as existing entries is placed ahead of them,
// matching prepend semantics for same-day submissions.
func Insert(records []Record, rec Record) []Record {
	idx := sort.Search(len(records), func(i int) bool {
		return !records[i].Date.After(rec.Date)
	})
	result := make([]Record, 0, len(records)+1)
	result = append(result, records[:idx]...)
	result = append(result, rec)
	result = append(result, records[idx:]...)
	return result
}

func monthOrdinal(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
