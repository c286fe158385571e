// Package calendar holds the working-day calendar and the date arithmetic the
// leave policies are built on. A Calendar is immutable once constructed and
// is safe for concurrent use without locking.
package calendar

import (
	"sort"
	"time"
)

// Holiday is a single, non-recurring calendar date.
type Holiday struct {
	Date time.Time
	Name string
}

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{y, m, d}
}

type Calendar struct {
	holidays map[dateKey]Holiday
	weekend  map[time.Weekday]struct{}
	sorted   []Holiday
}

// New builds a calendar from a literal holiday list. When no weekend days are
// given, Saturday and Sunday are used.
func New(holidays []Holiday, weekend ...time.Weekday) *Calendar {
	if len(weekend) == 0 {
		weekend = []time.Weekday{time.Saturday, time.Sunday}
	}

	c := &Calendar{
		holidays: make(map[dateKey]Holiday, len(holidays)),
		weekend:  make(map[time.Weekday]struct{}, len(weekend)),
	}
	for _, h := range holidays {
		h.Date = DateOf(h.Date)
		c.holidays[keyOf(h.Date)] = h
	}
	for _, wd := range weekend {
		c.weekend[wd] = struct{}{}
	}

	c.sorted = make([]Holiday, 0, len(c.holidays))
	for _, h := range c.holidays {
		c.sorted = append(c.sorted, h)
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		return c.sorted[i].Date.Before(c.sorted[j].Date)
	})

	return c
}

// Default returns the company calendar shipped with the service.
func Default() *Calendar {
	dates := []string{
		"01-09-2020", "10-09-2020", "15-09-2020", "20-09-2020", "25-09-2020",
		"30-09-2020", "01-11-2020", "15-11-2020", "11-12-2020", "15-12-2020",
	}
	holidays := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		t, err := ParseDate(d)
		if err != nil {
			panic(err)
		}
		holidays = append(holidays, Holiday{Date: t})
	}
	return New(holidays)
}

// IsHoliday matches the exact date only. A holiday in one year says nothing
// about the same day in another year.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[keyOf(t)]
	return ok
}

func (c *Calendar) IsNonWorkingWeekday(t time.Time) bool {
	_, ok := c.weekend[t.Weekday()]
	return ok
}

func (c *Calendar) IsWorkingDay(t time.Time) bool {
	return !c.IsHoliday(t) && !c.IsNonWorkingWeekday(t)
}

// HolidayCount counts holidays in the inclusive range.
func (c *Calendar) HolidayCount(start, end time.Time) int {
	return c.count(start, end, c.IsHoliday)
}

// NonWorkingCount counts weekend days in the inclusive range.
func (c *Calendar) NonWorkingCount(start, end time.Time) int {
	return c.count(start, end, c.IsNonWorkingWeekday)
}

// BothCount counts days that are a holiday and a weekend day at once.
func (c *Calendar) BothCount(start, end time.Time) int {
	return c.count(start, end, func(t time.Time) bool {
		return c.IsHoliday(t) && c.IsNonWorkingWeekday(t)
	})
}

// TotalWorkingDays counts working days in [start, end] by inclusion-exclusion,
// so a holiday falling on a weekend is subtracted once. An inverted range has
// no working days.
func (c *Calendar) TotalWorkingDays(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	nonWorking := c.HolidayCount(start, end) + c.NonWorkingCount(start, end) - c.BothCount(start, end)
	return DayCount(start, end) - nonWorking
}

// Holidays returns the holiday list ordered by date.
func (c *Calendar) Holidays() []Holiday {
	out := make([]Holiday, len(c.sorted))
	copy(out, c.sorted)
	return out
}

func (c *Calendar) count(start, end time.Time, match func(time.Time) bool) int {
	n := 0
	for d := DateOf(start); !d.After(DateOf(end)); d = d.AddDate(0, 0, 1) {
		if match(d) {
			n++
		}
	}
	return n
}
