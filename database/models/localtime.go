package models

import (
	"database/sql/driver"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LocalTime is a custom time type for GORM. It stores and reads timestamps in
// the application's configured timezone so sqlite TEXT columns round-trip.
type LocalTime time.Time

// Value implements the driver.Valuer interface.
func (t LocalTime) Value() (driver.Value, error) {
	if time.Time(t).IsZero() {
		return nil, nil
	}
	return time.Time(t).In(GetAppLocation()).Format("2006-01-02 15:04:05.0000000"), nil
}

// Scan implements the sql.Scanner interface.
func (t *LocalTime) Scan(v interface{}) error {
	if v == nil {
		*t = LocalTime(time.Time{})
		return nil
	}

	loc := GetAppLocation()

	switch val := v.(type) {
	case time.Time:
		// The driver assumes UTC for timezone-less strings; re-interpret the
		// wall clock in the application's timezone instead.
		year, month, day := val.Date()
		hour, min, sec := val.Clock()
		nanosec := val.Nanosecond()
		*t = LocalTime(time.Date(year, month, day, hour, min, sec, nanosec, loc))
		return nil
	case []byte:
		return t.parseTime(string(val), loc)
	case string:
		return t.parseTime(val, loc)
	default:
		return fmt.Errorf("LocalTime scan source was not string, []byte or time.Time: %T (%v)", v, v)
	}
}

func (t *LocalTime) parseTime(timeStr string, loc *time.Location) error {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		*t = LocalTime(time.Time{})
		return nil
	}

	layouts := []string{
		time.RFC3339Nano, time.RFC3339,
		"2006-01-02 15:04:05.0000000-07:00", "2006-01-02 15:04:05-07:00",
		"2006-01-02 15:04:05.0000000", "2006-01-02 15:04:05", "2006-01-02",
	}

	for _, layout := range layouts {
		if parsedTime, err := time.ParseInLocation(layout, timeStr, loc); err == nil {
			*t = LocalTime(parsedTime)
			return nil
		}
	}
	return fmt.Errorf("unable to parse time string '%s' into LocalTime", timeStr)
}

// MarshalJSON serializes LocalTime in RFC3339 with the configured offset.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte("null"), nil
	}
	formattedTime := time.Time(t).In(GetAppLocation()).Format(time.RFC3339)
	return []byte(fmt.Sprintf(`"%s"`, formattedTime)), nil
}

func (t LocalTime) ToTime() time.Time { return time.Time(t) }

func FromTime(t time.Time) LocalTime { return LocalTime(t) }

func Now() LocalTime { return LocalTime(time.Now().In(GetAppLocation())) }

var (
	appLocation  *time.Location
	locationOnce sync.Once
)

// GetAppLocation reads the application timezone from the TZ environment
// variable, falling back to UTC.
func GetAppLocation() *time.Location {
	locationOnce.Do(func() {
		tz := os.Getenv("TZ")
		if tz == "" {
			tz = "UTC"
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("Warning: Failed to load timezone '%s', falling back to UTC. Error: %v", tz, err)
			appLocation = time.UTC
		} else {
			appLocation = loc
		}
		time.Local = appLocation
	})
	return appLocation
}
