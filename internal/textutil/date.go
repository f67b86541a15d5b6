package textutil

import (
	"regexp"
	"strconv"
	"time"
)

var dateToken = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})[./](\d{4})\b`)

// DateWindow bounds the years FindDate accepts. The window is a sanity
// filter against OCR noise and case numbers, not a legal constraint.
type DateWindow struct {
	MinYear int
	MaxYear int
}

// DefaultDateWindow returns a rolling window around now: six years back,
// four years ahead.
func DefaultDateWindow(now time.Time) DateWindow {
	return DateWindow{MinYear: now.Year() - 6, MaxYear: now.Year() + 4}
}

// FindDate scans text for the first DD.MM.YYYY or DD/MM/YYYY token whose
// day, month and year pass the sanity window. Returns the zero time and
// false when nothing valid is present.
func FindDate(text string, window DateWindow) (time.Time, bool) {
	for _, m := range dateToken.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			continue
		}
		if year < window.MinYear || year > window.MaxYear {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
