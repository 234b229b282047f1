package timesheet

import (
	"time"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// MonthSheet returns the timesheet of the month containing the date,
	// starting an empty one when the project-month was never touched.
	MonthSheet(project string, date time.Time) (DailyRecord, error)
	// RecordHours sets the hours worked on one day and persists the whole
	// month.
	RecordHours(project string, date time.Time, hours int) (DailyRecord, error)
	// RawSheet returns the stored file contents of the month as-is.
	RawSheet(project string, date time.Time) (string, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) MonthSheet(project string, date time.Time) (DailyRecord, error) {
	return s.repo.Load(MonthKeyFor(project, date))
}

func (s *ServiceImpl) RecordHours(project string, date time.Time, hours int) (DailyRecord, error) {
	key := MonthKeyFor(project, date)
	record, err := s.repo.Load(key)
	if err != nil {
		return DailyRecord{}, err
	}
	updated, err := record.SetHours(date, hours)
	if err != nil {
		return DailyRecord{}, err
	}
	if err := s.repo.Save(key, updated); err != nil {
		return DailyRecord{}, err
	}
	log.Infof("recorded %d hours on %s for %s", hours, date.Format("2006-01-02"), key)
	return updated, nil
}

func (s *ServiceImpl) RawSheet(project string, date time.Time) (string, error) {
	return s.repo.Raw(MonthKeyFor(project, date))
}
