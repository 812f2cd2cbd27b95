// Package clock adds minute offsets to 12-hour "H:MM AM|PM" clock times.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidFormat is returned for time strings that are empty or do not
// match the "H:MM AM|PM" grammar.
var ErrInvalidFormat = errors.New("time must be in H:MM AM|PM format")

// MinutesInDay is the length of the wraparound cycle.
const MinutesInDay = 24 * 60

// timePattern accepts 1-12 without a leading zero, 00-59, and an uppercase meridiem.
var timePattern = regexp.MustCompile(`^([1-9]|1[0-2]):([0-5]\d) (AM|PM)$`)

// Meridiem marks the half of the day.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Time holds the validated fields of a 12-hour clock string.
type Time struct {
	Hour     int // 1-12
	Minute   int // 0-59
	Meridiem Meridiem
}

// ParseTime validates s and returns its fields.
func ParseTime(s string) (Time, error) {
	if s == "" {
		return Time{}, fmt.Errorf("%w: time must not be empty", ErrInvalidFormat)
	}

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidFormat, s, timePattern)
	}

	// The pattern guarantees both groups are decimal digits in range.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return Time{Hour: hour, Minute: minute, Meridiem: Meridiem(m[3])}, nil
}

// Valid reports whether s is a well-formed 12-hour clock string.
func Valid(s string) bool {
	return timePattern.MatchString(s)
}

// MinuteOfDay converts t to minutes since midnight.
// 12 AM is midnight and 12 PM is noon.
func (t Time) MinuteOfDay() MinuteOfDay {
	hourOfDay := t.Hour
	if hourOfDay == 12 {
		hourOfDay = 0
	}
	if t.Meridiem == PM {
		hourOfDay += 12
	}
	return MinuteOfDay(hourOfDay*60 + t.Minute)
}

// String renders t as "H:MM AM|PM".
func (t Time) String() string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Meridiem)
}

// MinuteOfDay is the number of minutes since midnight, in [0, 1439].
type MinuteOfDay int

// Parse converts a 12-hour clock string to minutes since midnight.
func Parse(s string) (MinuteOfDay, error) {
	t, err := ParseTime(s)
	if err != nil {
		return 0, err
	}
	return t.MinuteOfDay(), nil
}

// Normalize reduces any number of minutes into [0, 1439].
func Normalize(n int) MinuteOfDay {
	r := n % MinutesInDay
	if r < 0 {
		r += MinutesInDay
	}
	return MinuteOfDay(r)
}

// Add returns m moved by offset minutes, wrapping around midnight.
// Offsets may be negative or span several days.
func (m MinuteOfDay) Add(offset int) MinuteOfDay {
	// Reduce offset first so m+offset cannot overflow.
	return Normalize(int(m) + int(Normalize(offset)))
}

// Time decomposes m into 12-hour clock fields.
func (m MinuteOfDay) Time() Time {
	m = Normalize(int(m))

	meridiem := AM
	if m >= MinutesInDay/2 {
		meridiem = PM
	}

	hour := (int(m) / 60) % 12
	if hour == 0 {
		hour = 12
	}

	return Time{Hour: hour, Minute: int(m) % 60, Meridiem: meridiem}
}

// String renders m as "H:MM AM|PM".
func (m MinuteOfDay) String() string {
	return m.Time().String()
}
