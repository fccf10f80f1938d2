package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// Clock is the source of "now" and of the operating timezone every
// time-sensitive booking operation is evaluated in.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func New(loc *time.Location) Clock {
	return systemClock{loc: loc}
}

// NewFromName loads the IANA zone name, e.g. "Europe/Paris".
func NewFromName(name string) (Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone '%v': %w", name, err)
	}

	return New(loc), nil
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c systemClock) Location() *time.Location {
	return c.loc
}

// Fake is a settable clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
	loc *time.Location
}

func NewFake(now time.Time, loc *time.Location) *Fake {
	return &Fake{now: now.In(loc), loc: loc}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *Fake) Location() *time.Location {
	return f.loc
}

func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now.In(f.loc)
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

// ParseDate reads a "YYYY-MM-DD" string as midnight in loc. Full RFC 3339
// timestamps are accepted too and truncated to their calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if d, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return d, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: '%v'", ErrInvalidDate, value)
	}

	return StartOfDay(t, loc), nil
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// CalendarDate is midnight in loc of the calendar date t carries in its own
// location. Postgres DATE values are read back as UTC midnight.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: '%v'", ErrInvalidTime, value)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("%w: '%v'", ErrInvalidTime, value)
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: '%v'", ErrInvalidTime, value)
	}

	total := hours*60 + minutes
	if total > 24*60 {
		return 0, fmt.Errorf("%w: '%v'", ErrInvalidTime, value)
	}

	return total, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// At returns the instant that is minutes past midnight of date, in loc.
// Wall-clock construction keeps the result correct across DST changes.
func At(date time.Time, minutes int, loc *time.Location) time.Time {
	date = date.In(loc)
	return time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, loc)
}

// Weekday returns the three-letter English abbreviation, e.g. "Mon".
func Weekday(date time.Time, loc *time.Location) string {
	return date.In(loc).Weekday().String()[:3]
}
