package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a holiday calendar.
//
//	weekend: [saturday, sunday]
//	holidays:
//	  - date: 01-09-2020
//	    name: Company day
type File struct {
	Weekend  []string      `yaml:"weekend"`
	Holidays []HolidayFile `yaml:"holidays"`
}

type HolidayFile struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LoadFile reads a YAML holiday calendar from path.
func LoadFile(path string) (*Calendar, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calendar: read file %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML holiday calendar.
func Parse(b []byte) (*Calendar, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("calendar: parse yaml: %w", err)
	}

	weekend := make([]time.Weekday, 0, len(f.Weekend))
	for _, name := range f.Weekend {
		wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("calendar: unknown weekday %q", name)
		}
		weekend = append(weekend, wd)
	}

	holidays := make([]Holiday, 0, len(f.Holidays))
	for i, h := range f.Holidays {
		date, err := ParseDate(h.Date)
		if err != nil {
			return nil, fmt.Errorf("calendar: holidays[%d]: %w", i, err)
		}
		holidays = append(holidays, Holiday{Date: date, Name: h.Name})
	}

	return New(holidays, weekend...), nil
}
