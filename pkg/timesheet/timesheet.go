package timesheet

import (
	"errors"
	"fmt"
	"time"
)

var ErrDayOutOfRange = errors.New("day out of range")
var ErrMissingDay = errors.New("missing day in timesheet")
var ErrNegativeHours = errors.New("negative hours")

// MonthKey identifies the timesheet of one project for one calendar month.
// Keys are compared exactly: project names are case-sensitive and never
// normalized.
type MonthKey struct {
	Project string
	Year    int
	Month   time.Month
}

// MonthKeyFor returns the key of the month containing the given date.
func MonthKeyFor(project string, date time.Time) MonthKey {
	return MonthKey{Project: project, Year: date.Year(), Month: date.Month()}
}

// Days returns the number of calendar days in the month (28-31).
func (k MonthKey) Days() int {
	return daysIn(k.Year, k.Month)
}

// First returns the first day of the month at UTC midnight.
func (k MonthKey) First() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date falls within the month.
func (k MonthKey) Contains(date time.Time) bool {
	return date.Year() == k.Year && date.Month() == k.Month
}

// Filename returns the name of the backing file, e.g. "acme-time-04-2024.csv".
// The format is part of the on-disk contract and must not change.
func (k MonthKey) Filename() string {
	return fmt.Sprintf("%s-time-%02d-%04d.csv", k.Project, int(k.Month), k.Year)
}

// Equal returns true when project, year and month all match.
func (k MonthKey) Equal(other MonthKey) bool {
	return k.Project == other.Project && k.Year == other.Year && k.Month == other.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s/%04d-%02d", k.Project, k.Year, int(k.Month))
}

// DailyRecord holds the hours worked for every day of one month. The hours
// slice always covers day 1 through the last day of the month, so the record
// cannot have gaps or extra days.
type DailyRecord struct {
	year  int
	month time.Month
	hours []int
}

// NewDailyRecord returns a record for the given month with zero hours on
// every day.
func NewDailyRecord(year int, month time.Month) DailyRecord {
	return DailyRecord{
		year:  year,
		month: month,
		hours: make([]int, daysIn(year, month)),
	}
}

// Days returns the number of days covered by the record.
func (r DailyRecord) Days() int {
	return len(r.hours)
}

// First returns the first day of the record's month at UTC midnight.
func (r DailyRecord) First() time.Time {
	return time.Date(r.year, r.month, 1, 0, 0, 0, 0, time.UTC)
}

// HoursOn returns the hours recorded for the given date. It fails with
// ErrMissingDay when the date is not covered by the record; callers that
// iterate over the record's own month never hit this.
func (r DailyRecord) HoursOn(date time.Time) (int, error) {
	if date.Year() != r.year || date.Month() != r.month {
		return 0, fmt.Errorf("%w: %s is not in %04d-%02d",
			ErrMissingDay, date.Format("2006-01-02"), r.year, int(r.month))
	}
	return r.hours[date.Day()-1], nil
}

// SetHours returns a copy of the record with the hours of one day replaced.
// The receiver is left untouched. It fails with ErrDayOutOfRange when the
// date falls outside the record's month and with ErrNegativeHours when the
// hours are below zero.
func (r DailyRecord) SetHours(date time.Time, hours int) (DailyRecord, error) {
	if date.Year() != r.year || date.Month() != r.month {
		return DailyRecord{}, fmt.Errorf("%w: %s is not in %04d-%02d",
			ErrDayOutOfRange, date.Format("2006-01-02"), r.year, int(r.month))
	}
	if hours < 0 {
		return DailyRecord{}, fmt.Errorf("%w: %d hours on %s",
			ErrNegativeHours, hours, date.Format("2006-01-02"))
	}
	updated := make([]int, len(r.hours))
	copy(updated, r.hours)
	updated[date.Day()-1] = hours
	return DailyRecord{year: r.year, month: r.month, hours: updated}, nil
}

// Equal reports whether both records cover the same month with the same
// hours on every day.
func (r DailyRecord) Equal(other DailyRecord) bool {
	if r.year != other.year || r.month != other.month || len(r.hours) != len(other.hours) {
		return false
	}
	for i, hours := range r.hours {
		if other.hours[i] != hours {
			return false
		}
	}
	return true
}

// daysIn uses the day-zero normalization of time.Date to find the length of
// a month, which keeps leap years correct.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
