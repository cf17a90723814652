package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(email string, date time.Time, status Status) Record {
	return Record{ID: email + date.Format("20060102"), EmployeeEmail: email, Date: date, Status: status}
}

func TestDailySummary(t *testing.T) {
	records := []Record{
		rec("alice@x.com", day(2024, time.March, 1), StatusPresent),
		rec("bob@x.com", day(2024, time.March, 1), StatusAbsent),
		rec("alice@x.com", day(2024, time.February, 15), StatusPresent),
	}

	summary := DailySummary(records, day(2024, time.March, 1))
	assert.Equal(t, Summary{Present: 1, Absent: 1}, summary)
	assert.Equal(t, 2, summary.Total())

	// Records outside the target day never contribute.
	empty := DailySummary(records, day(2024, time.March, 2))
	assert.Equal(t, Summary{}, empty)
}

func TestDailySummaryIgnoresTimeOfDay(t *testing.T) {
	records := []Record{
		rec("a@x.com", day(2024, time.May, 10), StatusHalfDay),
	}
	// Target carrying a time-of-day component still matches the calendar day.
	target := time.Date(2024, time.May, 10, 17, 45, 3, 0, time.UTC)
	assert.Equal(t, Summary{HalfDay: 1}, DailySummary(records, target))
}

func TestDailySummarySkipsUnknownStatus(t *testing.T) {
	records := []Record{
		rec("a@x.com", day(2024, time.May, 10), StatusPresent),
		rec("b@x.com", day(2024, time.May, 10), Status("Vacationing")),
	}
	summary := DailySummary(records, day(2024, time.May, 10))
	assert.Equal(t, Summary{Present: 1}, summary)
}

func TestMonthlySummariesPartition(t *testing.T) {
	records := []Record{
		rec("alice@x.com", day(2024, time.March, 1), StatusPresent),
		rec("bob@x.com", day(2024, time.March, 1), StatusAbsent),
		rec("alice@x.com", day(2024, time.February, 15), StatusPresent),
		rec("carol@x.com", day(2023, time.December, 8), StatusOnLeave),
	}

	groups := MonthlySummaries(records)
	require.Len(t, groups, 3)

	// Newest month first.
	assert.Equal(t, "2024-03", groups[0].MonthKey())
	assert.Equal(t, "2024-02", groups[1].MonthKey())
	assert.Equal(t, "2023-12", groups[2].MonthKey())

	assert.Equal(t, Summary{Present: 1, Absent: 1}, groups[0].Summary)
	assert.Equal(t, Summary{Present: 1}, groups[1].Summary)
	assert.Equal(t, Summary{OnLeave: 1}, groups[2].Summary)

	// Partition: group totals sum to the record count.
	total := 0
	for _, g := range groups {
		total += g.Total()
	}
	assert.Equal(t, len(records), total)
}

func TestUserMonthlySummariesRefinePartition(t *testing.T) {
	records := []Record{
		rec("bob@x.com", day(2024, time.March, 4), StatusHalfDay),
		rec("alice@x.com", day(2024, time.March, 1), StatusPresent),
		rec("alice@x.com", day(2024, time.March, 2), StatusAbsent),
		rec("alice@x.com", day(2024, time.February, 15), StatusPresent),
	}

	perUser := UserMonthlySummaries(records)
	require.Len(t, perUser, 3)

	// Months newest first, emails ascending within a month.
	assert.Equal(t, "2024-03", perUser[0].MonthKey())
	assert.Equal(t, "alice@x.com", perUser[0].EmployeeEmail)
	assert.Equal(t, "2024-03", perUser[1].MonthKey())
	assert.Equal(t, "bob@x.com", perUser[1].EmployeeEmail)
	assert.Equal(t, "2024-02", perUser[2].MonthKey())

	// Summing per-user counters within a month reproduces the month group.
	monthly := MonthlySummaries(records)
	var march Summary
	for _, u := range perUser {
		if u.MonthKey() == "2024-03" {
			march.Present += u.Present
			march.Absent += u.Absent
			march.OnLeave += u.OnLeave
			march.HalfDay += u.HalfDay
		}
	}
	assert.Equal(t, monthly[0].Summary, march)
}

func TestSummariesArePure(t *testing.T) {
	records := []Record{
		rec("alice@x.com", day(2024, time.March, 1), StatusPresent),
		rec("bob@x.com", day(2024, time.March, 1), StatusAbsent),
	}

	first := MonthlySummaries(records)
	second := MonthlySummaries(records)
	assert.Equal(t, first, second)

	d1 := DailySummary(records, day(2024, time.March, 1))
	d2 := DailySummary(records, day(2024, time.March, 1))
	assert.Equal(t, d1, d2)

	u1 := UserMonthlySummaries(records)
	u2 := UserMonthlySummaries(records)
	assert.Equal(t, u1, u2)
}

func TestMatching(t *testing.T) {
	records := []Record{
		rec("alice@x.com", day(2024, time.March, 2), StatusPresent),
		rec("bob@x.com", day(2024, time.March, 1), StatusAbsent),
		rec("alice@x.com", day(2024, time.February, 15), StatusPresent),
	}

	absentees := Matching(records, func(r Record) bool {
		return SameDay(r.Date, day(2024, time.March, 1)) && r.Status == StatusAbsent
	})
	require.Len(t, absentees, 1)
	assert.Equal(t, "bob@x.com", absentees[0].EmployeeEmail)

	alice := Matching(records, func(r Record) bool { return r.EmployeeEmail == "alice@x.com" })
	assert.Len(t, alice, 2)
	// Order encountered is preserved.
	assert.True(t, alice[0].Date.After(alice[1].Date))
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	var records []Record

	records = Insert(records, rec("a@x.com", day(2024, time.March, 1), StatusPresent))
	records = Insert(records, rec("b@x.com", day(2024, time.March, 5), StatusAbsent))
	records = Insert(records, rec("c@x.com", day(2024, time.February, 20), StatusOnLeave))
	records = Insert(records, rec("d@x.com", day(2024, time.March, 3), StatusHalfDay))

	require.Len(t, records, 4)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i-1].Date.Before(records[i].Date),
			"records must be sorted by date descending")
	}
}

func TestInsertSameDayPrepends(t *testing.T) {
	records := []Record{
		{ID: "old", EmployeeEmail: "a@x.com", Date: day(2024, time.March, 1), Status: StatusPresent},
	}
	records = Insert(records, Record{ID: "new", EmployeeEmail: "b@x.com", Date: day(2024, time.March, 1), Status: StatusAbsent})

	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "old", records[1].ID)

	// The new record is present exactly once.
	count := 0
	for _, r := range records {
		if r.ID == "new" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEndToEndScenario(t *testing.T) {
	// Scenario from the reporting requirements: two March records, one
	// February record.
	records := []Record{
		rec("alice@x.com", day(2024, time.March, 1), StatusPresent),
		rec("bob@x.com", day(2024, time.March, 1), StatusAbsent),
		rec("alice@x.com", day(2024, time.February, 15), StatusPresent),
	}

	daily := DailySummary(records, day(2024, time.March, 1))
	assert.Equal(t, Summary{Present: 1, Absent: 1, OnLeave: 0, HalfDay: 0}, daily)

	monthly := MonthlySummaries(records)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-03", monthly[0].MonthKey())
	assert.Equal(t, Summary{Present: 1, Absent: 1}, monthly[0].Summary)
	assert.Equal(t, "2024-02", monthly[1].MonthKey())
	assert.Equal(t, Summary{Present: 1}, monthly[1].Summary)
}
