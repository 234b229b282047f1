package timesheet

import "fmt"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	sheets  map[MonthKey]DailyRecord
	raw     map[MonthKey]string
	saves   int
	failure error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{
		sheets: map[MonthKey]DailyRecord{},
		raw:    map[MonthKey]string{},
	}
}

func (s *StubRepository) Load(key MonthKey) (DailyRecord, error) {
	if s.failure != nil {
		return DailyRecord{}, s.failure
	}
	if record, ok := s.sheets[key]; ok {
		return record, nil
	}
	return NewDailyRecord(key.Year, key.Month), nil
}

func (s *StubRepository) Save(key MonthKey, record DailyRecord) error {
	if s.failure != nil {
		return s.failure
	}
	s.saves++
	s.sheets[key] = record
	return nil
}

func (s *StubRepository) Raw(key MonthKey) (string, error) {
	raw, ok := s.raw[key]
	if !ok {
		return "", fmt.Errorf("%w: no stored sheet for %s", ErrIO, key)
	}
	return raw, nil
}

// Seed stores a record without counting it as a save.
func (s *StubRepository) Seed(key MonthKey, record DailyRecord) {
	s.sheets[key] = record
}

// SeedRaw stores verbatim file contents for Raw to return.
func (s *StubRepository) SeedRaw(key MonthKey, raw string) {
	s.raw[key] = raw
}

// Saves returns how many times Save has been called.
func (s *StubRepository) Saves() int {
	return s.saves
}

// FailWith makes Load and Save return the given error.
func (s *StubRepository) FailWith(err error) {
	s.failure = err
}

func (s *StubRepository) Cleanup() {
	s.sheets = map[MonthKey]DailyRecord{}
	s.raw = map[MonthKey]string{}
	s.saves = 0
	s.failure = nil
}
