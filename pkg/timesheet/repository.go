package timesheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var ErrCorruptFormat = errors.New("corrupt timesheet file")
var ErrIO = errors.New("timesheet storage failure")

type Repository interface {
	Load(key MonthKey) (DailyRecord, error)
	Save(key MonthKey, record DailyRecord) error
	Raw(key MonthKey) (string, error)
}

// FileRepository persists one CSV file per project-month inside a data
// directory. The file holds two lines: the ISO dates of the month and the
// hours worked on each of them, both in ascending date order.
type FileRepository struct {
	dataDir string
}

func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{dataDir: dataDir}
}

// Load reads the timesheet of the given month. When no file exists yet it
// returns a fresh all-zero record and makes sure the data directory is in
// place, so a later Save cannot fail on a missing directory.
func (r *FileRepository) Load(key MonthKey) (DailyRecord, error) {
	path := r.path(key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debugf("no timesheet at %s, starting %s with an empty month", path, key)
		if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
			err := fmt.Errorf("%w: creating %s: %v", ErrIO, r.dataDir, err)
			log.Error(err)
			return DailyRecord{}, err
		}
		return NewDailyRecord(key.Year, key.Month), nil
	}
	if err != nil {
		err := fmt.Errorf("%w: reading %s: %v", ErrIO, path, err)
		log.Error(err)
		return DailyRecord{}, err
	}
	return decodeRecord(key, data)
}

// Save rewrites the whole backing file for the month. The record is written
// to a temporary path first and moved into place, so readers never see a
// half-written timesheet.
func (r *FileRepository) Save(key MonthKey, record DailyRecord) error {
	data, err := encodeRecord(record)
	if err != nil {
		err := fmt.Errorf("%w: encoding %s: %v", ErrIO, key, err)
		log.Error(err)
		return err
	}
	path := r.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		err := fmt.Errorf("%w: writing %s: %v", ErrIO, tmp, err)
		log.Error(err)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		err := fmt.Errorf("%w: replacing %s: %v", ErrIO, path, err)
		log.Error(err)
		return err
	}
	log.Debugf("saved timesheet %s to %s", key, path)
	return nil
}

// Raw returns the stored file contents verbatim. Unlike Load it fails when
// the file does not exist.
func (r *FileRepository) Raw(key MonthKey) (string, error) {
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrIO, r.path(key), err)
	}
	return string(data), nil
}

func (r *FileRepository) path(key MonthKey) string {
	return filepath.Join(r.dataDir, key.Filename())
}

// decodeRecord parses the two-line format. The date header is positional
// redundancy: only its length is checked (the csv reader rejects ragged
// lines), the hours line is what gets trusted.
func decodeRecord(key MonthKey, data []byte) (DailyRecord, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return DailyRecord{}, fmt.Errorf("%w: %v", ErrCorruptFormat, err)
	}
	if len(rows) != 2 {
		return DailyRecord{}, fmt.Errorf("%w: expected a date line and an hours line, got %d lines",
			ErrCorruptFormat, len(rows))
	}
	values := rows[1]
	if len(values) != key.Days() {
		return DailyRecord{}, fmt.Errorf("%w: %d hour values for the %d days of %s",
			ErrCorruptFormat, len(values), key.Days(), key)
	}
	record := NewDailyRecord(key.Year, key.Month)
	for i, value := range values {
		hours, err := strconv.Atoi(value)
		if err != nil || hours < 0 {
			return DailyRecord{}, fmt.Errorf("%w: bad hours value %q on day %d",
				ErrCorruptFormat, value, i+1)
		}
		record.hours[i] = hours
	}
	return record, nil
}

func encodeRecord(record DailyRecord) ([]byte, error) {
	dates := make([]string, 0, record.Days())
	values := make([]string, 0, record.Days())
	for day := record.First(); day.Month() == record.month; day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format("2006-01-02"))
		values = append(values, strconv.Itoa(record.hours[day.Day()-1]))
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.Write(dates); err != nil {
		return nil, err
	}
	if err := writer.Write(values); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
