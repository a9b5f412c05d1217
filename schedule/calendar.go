// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schedule - weekly mining calendar
//
// Each weekday holds a comma separated list of "HH:MM-HH:MM" periods
// during which mining is allowed. An empty day means all day.
package schedule

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
)

const (
	periodSeparator = ","
	clockSeparator  = "-"
	minutesPerHour  = 60
	minutesPerDay   = 24 * minutesPerHour
	daysPerWeek     = 7
)

// Week - raw calendar text as read from the configuration file
type Week struct {
	Monday    string `gluamapper:"monday" json:"monday"`
	Tuesday   string `gluamapper:"tuesday" json:"tuesday"`
	Wednesday string `gluamapper:"wednesday" json:"wednesday"`
	Thursday  string `gluamapper:"thursday" json:"thursday"`
	Friday    string `gluamapper:"friday" json:"friday"`
	Saturday  string `gluamapper:"saturday" json:"saturday"`
	Sunday    string `gluamapper:"sunday" json:"sunday"`
}

func (w Week) day(d time.Weekday) string {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Window - minutes since midnight, start inclusive, stop exclusive
type Window struct {
	Start int
	Stop  int
}

func (w Window) contains(minute int) bool {
	return minute >= w.Start && minute < w.Stop
}

var allDay = []Window{{Start: 0, Stop: minutesPerDay}}

// Calendar - weekly windows, safe for concurrent refresh and query
type Calendar struct {
	sync.RWMutex
	log     *logger.L
	raw     Week
	windows [daysPerWeek][]Window
}

// New - a calendar that allows mining all week
func New(log *logger.L) *Calendar {
	c := &Calendar{
		log: log,
	}
	for d := range c.windows {
		c.windows[d] = allDay
	}
	return c
}

// Refresh - replace the calendar, returns true if anything changed
// malformed periods are logged and skipped; a day left with no valid
// period is treated as all day
func (c *Calendar) Refresh(week Week) bool {
	c.Lock()
	defer c.Unlock()

	if reflect.DeepEqual(c.raw, week) {
		return false
	}

	c.log.Debugf("previous: %+v", c.raw)
	c.log.Debugf("new: %+v", week)
	c.raw = week

	for d := time.Sunday; d <= time.Saturday; d += 1 {
		windows, err := ParseDay(week.day(d))
		if nil != err {
			c.log.Errorf("%s: %q  error: %s", d, week.day(d), err)
		}
		if 0 == len(windows) {
			windows = allDay
		}
		c.windows[d] = windows
		c.log.Debugf("%s: %d windows: %+v", d, len(windows), windows)
	}
	return true
}

// Active - true if mining is allowed at t
func (c *Calendar) Active(t time.Time) bool {
	c.RLock()
	defer c.RUnlock()

	minute := t.Hour()*minutesPerHour + t.Minute()
	for _, w := range c.windows[t.Weekday()] {
		if w.contains(minute) {
			return true
		}
	}
	return false
}

// NextStart - the earliest time not before t at which mining is allowed
func (c *Calendar) NextStart(t time.Time) time.Time {
	if c.Active(t) {
		return t
	}

	c.RLock()
	defer c.RUnlock()

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for offset := 0; offset <= daysPerWeek; offset += 1 {
		day := midnight.AddDate(0, 0, offset)
		for _, w := range c.windows[day.Weekday()] {
			start := day.Add(time.Duration(w.Start) * time.Minute)
			if start.After(t) {
				return start
			}
		}
	}

	// unreachable: every day has at least one window
	return t
}

// ParseDay - parse all periods of one day, sorted by start
// valid periods are returned together with the first error seen
func ParseDay(s string) ([]Window, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}

	var firstErr error
	windows := make([]Window, 0)
	for _, period := range strings.Split(s, periodSeparator) {
		w, err := ParsePeriod(period)
		if nil != err {
			if nil == firstErr {
				firstErr = err
			}
			continue
		}
		windows = append(windows, w)
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start < windows[j].Start
	})
	return windows, firstErr
}

// ParsePeriod - "HH:MM-HH:MM", either order, stop may be 24:00
func ParsePeriod(period string) (Window, error) {
	clocks := strings.Split(strings.ReplaceAll(period, " ", ""), clockSeparator)
	if 2 != len(clocks) {
		return Window{}, fmt.Errorf("%q: %w", period, fault.ErrCalendarPeriod)
	}
	first, err := parseClock(clocks[0])
	if nil != err {
		return Window{}, err
	}
	second, err := parseClock(clocks[1])
	if nil != err {
		return Window{}, err
	}
	if first == second {
		return Window{}, fmt.Errorf("%q: %w", period, fault.ErrCalendarPeriod)
	}
	if first > second {
		first, second = second, first
	}
	return Window{Start: first, Stop: second}, nil
}

// minutes since midnight
func parseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if 2 != len(parts) {
		return 0, fmt.Errorf("%q: %w", clock, fault.ErrCalendarTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if nil != err || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("%q: %w", clock, fault.ErrCalendarTime)
	}
	minute, err := strconv.Atoi(parts[1])
	if nil != err || minute < 0 || minute >= minutesPerHour {
		return 0, fmt.Errorf("%q: %w", clock, fault.ErrCalendarTime)
	}
	total := hour*minutesPerHour + minute
	if total > minutesPerDay {
		return 0, fmt.Errorf("%q: %w", clock, fault.ErrCalendarTime)
	}
	return total, nil
}
