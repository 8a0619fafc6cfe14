// Package clock implements the time arithmetic behind the paper's derived
// values: elapsed-duration labels, end-time offsets and 12-hour display
// formatting. All functions operate on "HH:MM" strings on a 24-hour clock
// and are pure; callers recompute on every read.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseHHMM parses a 24-hour "HH:MM" string into hour and minute.
func ParseHHMM(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hour in %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return hour, minute, nil
}

// ElapsedMinutes returns the whole minutes from start to end, wrapping
// forward past midnight when end is earlier than start. Same-day exams
// are assumed, so the result is never negative.
func ElapsedMinutes(start, end string) (int, error) {
	sh, sm, err := ParseHHMM(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := ParseHHMM(end)
	if err != nil {
		return 0, err
	}
	diff := (eh*60 + em) - (sh*60 + sm)
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, nil
}

// DurationLabel renders the elapsed time between start and end as a
// human-readable label such as "1 Hr 30 Mins". Hours and minutes are each
// included only when non-zero; equal start and end yield an empty string.
// Malformed inputs also yield an empty string: the label is display-only
// and the underlying fields are validated elsewhere.
func DurationLabel(start, end string) string {
	mins, err := ElapsedMinutes(start, end)
	if err != nil {
		return ""
	}
	return formatMinutes(mins)
}

func formatMinutes(mins int) string {
	h, m := mins/60, mins%60
	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d Hr", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d Mins", m))
	}
	return strings.Join(parts, " ")
}

// AddMinutes adds a whole-minute offset to a start time, wrapping past
// 23:59 back to 00:00.
func AddMinutes(start string, offset int) (string, error) {
	h, m, err := ParseHHMM(start)
	if err != nil {
		return "", err
	}
	total := (h*60 + m + offset) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Format12Hour converts a 24-hour "HH:MM" into 12-hour display form with
// an AM/PM suffix. Hour 0 and hour 12 both display as "12".
func Format12Hour(s string) string {
	h, m, err := ParseHHMM(s)
	if err != nil {
		return s
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}
