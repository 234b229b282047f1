package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthKeyFor(t *testing.T) {
	t.Run("should key on the month containing the date", func(t *testing.T) {
		// given
		worked := time.Date(2024, time.April, 17, 15, 42, 13, 0, time.UTC)

		// when
		key := MonthKeyFor("acme", worked)

		// then
		assert.Equal(t, MonthKey{Project: "acme", Year: 2024, Month: time.April}, key)
	})
}

func TestMonthKey_Filename(t *testing.T) {
	tests := []struct {
		name string
		key  MonthKey
		want string
	}{
		{
			name: "zero-pads single digit months",
			key:  MonthKey{Project: "acme", Year: 2024, Month: time.April},
			want: "acme-time-04-2024.csv",
		},
		{
			name: "keeps two digit months as-is",
			key:  MonthKey{Project: "acme", Year: 2023, Month: time.November},
			want: "acme-time-11-2023.csv",
		},
		{
			name: "keeps the project name untouched",
			key:  MonthKey{Project: "Side-Project", Year: 2024, Month: time.January},
			want: "Side-Project-time-01-2024.csv",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Filename())
		})
	}
}

func TestMonthKey_Days(t *testing.T) {
	tests := []struct {
		name string
		key  MonthKey
		want int
	}{
		{name: "31 day month", key: MonthKey{Project: "acme", Year: 2024, Month: time.January}, want: 31},
		{name: "30 day month", key: MonthKey{Project: "acme", Year: 2024, Month: time.April}, want: 30},
		{name: "February", key: MonthKey{Project: "acme", Year: 2023, Month: time.February}, want: 28},
		{name: "leap year February", key: MonthKey{Project: "acme", Year: 2024, Month: time.February}, want: 29},
		{name: "century non-leap February", key: MonthKey{Project: "acme", Year: 1900, Month: time.February}, want: 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Days())
		})
	}
}

func TestMonthKey_First(t *testing.T) {
	key := MonthKey{Project: "acme", Year: 2024, Month: time.April}

	assert.Equal(t, date(2024, time.April, 1), key.First())
}

func TestMonthKey_Contains(t *testing.T) {
	key := MonthKey{Project: "acme", Year: 2024, Month: time.April}

	assert.True(t, key.Contains(date(2024, time.April, 1)))
	assert.True(t, key.Contains(date(2024, time.April, 30)))
	assert.False(t, key.Contains(date(2024, time.March, 31)))
	assert.False(t, key.Contains(date(2024, time.May, 1)))
	assert.False(t, key.Contains(date(2023, time.April, 15)))
}

func TestMonthKey_Equal(t *testing.T) {
	key := MonthKey{Project: "acme", Year: 2024, Month: time.April}

	assert.True(t, key.Equal(MonthKey{Project: "acme", Year: 2024, Month: time.April}))
	assert.False(t, key.Equal(MonthKey{Project: "Acme", Year: 2024, Month: time.April}))
	assert.False(t, key.Equal(MonthKey{Project: "acme", Year: 2023, Month: time.April}))
	assert.False(t, key.Equal(MonthKey{Project: "acme", Year: 2024, Month: time.May}))
}

func TestNewDailyRecord(t *testing.T) {
	t.Run("should cover every day of the month with zero hours", func(t *testing.T) {
		// when
		record := NewDailyRecord(2024, time.April)

		// then
		assert.Equal(t, 30, record.Days())
		for day := record.First(); day.Month() == time.April; day = day.AddDate(0, 0, 1) {
			hours, err := record.HoursOn(day)
			require.NoError(t, err)
			assert.Equal(t, 0, hours)
		}
	})

	t.Run("should cover leap year February", func(t *testing.T) {
		record := NewDailyRecord(2024, time.February)
		assert.Equal(t, 29, record.Days())
	})
}

func TestDailyRecord_SetHours(t *testing.T) {
	t.Run("should change exactly one day", func(t *testing.T) {
		// given
		record := NewDailyRecord(2024, time.April)
		record, err := record.SetHours(date(2024, time.April, 12), 6)
		require.NoError(t, err)

		// when
		updated, err := record.SetHours(date(2024, time.April, 1), 8)

		// then
		assert.NoError(t, err)
		for day := updated.First(); day.Month() == time.April; day = day.AddDate(0, 0, 1) {
			hours, err := updated.HoursOn(day)
			require.NoError(t, err)
			switch day.Day() {
			case 1:
				assert.Equal(t, 8, hours)
			case 12:
				assert.Equal(t, 6, hours)
			default:
				assert.Equal(t, 0, hours)
			}
		}
	})

	t.Run("should leave the input record untouched", func(t *testing.T) {
		// given
		record := NewDailyRecord(2024, time.April)

		// when
		_, err := record.SetHours(date(2024, time.April, 1), 8)

		// then
		require.NoError(t, err)
		hours, err := record.HoursOn(date(2024, time.April, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, hours)
	})

	t.Run("should reject a date outside the record's month", func(t *testing.T) {
		// given
		record := NewDailyRecord(2024, time.April)

		// when
		_, err := record.SetHours(date(2024, time.May, 1), 8)

		// then
		assert.ErrorIs(t, err, ErrDayOutOfRange)
	})

	t.Run("should reject the same month of another year", func(t *testing.T) {
		record := NewDailyRecord(2024, time.April)

		_, err := record.SetHours(date(2023, time.April, 1), 8)

		assert.ErrorIs(t, err, ErrDayOutOfRange)
	})

	t.Run("should reject negative hours", func(t *testing.T) {
		// given
		record := NewDailyRecord(2024, time.April)

		// when
		_, err := record.SetHours(date(2024, time.April, 1), -1)

		// then
		assert.ErrorIs(t, err, ErrNegativeHours)
		hours, err := record.HoursOn(date(2024, time.April, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, hours)
	})
}

func TestDailyRecord_Equal(t *testing.T) {
	base := NewDailyRecord(2024, time.April)
	changed, err := base.SetHours(date(2024, time.April, 1), 8)
	require.NoError(t, err)

	assert.True(t, base.Equal(NewDailyRecord(2024, time.April)))
	assert.False(t, base.Equal(changed))
	assert.False(t, base.Equal(NewDailyRecord(2024, time.May)))
	assert.False(t, base.Equal(NewDailyRecord(2023, time.April)))
}

func TestDailyRecord_HoursOn(t *testing.T) {
	t.Run("should return what was set", func(t *testing.T) {
		// given
		record := NewDailyRecord(2024, time.April)
		record, err := record.SetHours(date(2024, time.April, 8), 7)
		require.NoError(t, err)

		// when
		hours, err := record.HoursOn(date(2024, time.April, 8))

		// then
		assert.NoError(t, err)
		assert.Equal(t, 7, hours)
	})

	t.Run("should fail for a date the record does not cover", func(t *testing.T) {
		record := NewDailyRecord(2024, time.April)

		_, err := record.HoursOn(date(2024, time.March, 31))

		assert.ErrorIs(t, err, ErrMissingDay)
	})
}
