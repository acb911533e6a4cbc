package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyflow/internal/domain"
)

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

// deadlinePattern captures the keyword in group 1 and the date in group 2.
var deadlinePattern = regexp.MustCompile(
	`(?i)(due|by|deadline|submit|before)\s*:?\s*(` +
		`(?:` + monthNames + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?` +
		`|\d{1,2}/\d{1,2}(?:/\d{2,4})?)`)

var (
	monthDayPattern = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?$`)
	slashPattern    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseDeadline converts a captured date phrase into a midnight timestamp in
// now's location. A missing year means the next occurrence on or after today.
// Impossible dates such as February 30 return nil.
func parseDeadline(s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)

	var (
		month        time.Month
		day, year    int
		yearExplicit bool
	)

	if m := monthDayPattern.FindStringSubmatch(s); m != nil {
		name := strings.ToLower(m[1])
		if len(name) < 3 {
			return nil
		}
		mo, ok := monthsByPrefix[name[:3]]
		if !ok {
			return nil
		}
		month = mo
		day, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			yearExplicit = true
		}
	} else if m := slashPattern.FindStringSubmatch(s); m != nil {
		mo, _ := strconv.Atoi(m[1])
		if mo < 1 || mo > 12 {
			return nil
		}
		month = time.Month(mo)
		day, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			switch len(m[3]) {
			case 2:
				y, _ := strconv.Atoi(m[3])
				year = 2000 + y
			case 4:
				year, _ = strconv.Atoi(m[3])
			default:
				return nil
			}
			yearExplicit = true
		}
	} else {
		return nil
	}

	if !yearExplicit {
		year = now.Year()
	}
	d, ok := dateOf(year, month, day, now.Location())
	if !ok {
		return nil
	}
	if !yearExplicit && d.Before(domain.StartOfDay(now)) {
		if d, ok = dateOf(year+1, month, day, now.Location()); !ok {
			return nil
		}
	}
	return &d
}

// dateOf builds a date and rejects values time.Date would normalize.
func dateOf(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
