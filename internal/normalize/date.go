// Package normalize turns raw scraped post fragments into clean,
// analytics-ready values. Everything in this package is pure computation
// over in-memory strings: no clock reads, no I/O, no browser types.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// relativePattern matches offsets like "2d", "3 w", "1mo", "2 weeks".
// Longer unit spellings come first so "months" is not consumed as "mo".
var relativePattern = regexp.MustCompile(`(\d+)\s*(hours|hour|hrs|hr|h|days|day|d|weeks|week|wks|wk|w|months|month|mos|mo|years|year|yrs|yr|y)\b`)

// absoluteLayouts are tried in order against the cleaned, title-cased input.
// Layouts without a year fall back to year inference from the reference date.
var absoluteLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"Jan 2",
	"January 2",
}

// NormalizeDate converts a relative or partial date expression into an
// absolute calendar date anchored at ref. The reference instant is supplied
// by the caller so the function stays deterministic. Unrecognized input
// returns ok=false; the function never fails otherwise.
func NormalizeDate(raw string, ref time.Time) (time.Time, bool) {
	cleaned := cleanDateText(raw)
	if cleaned == "" {
		return time.Time{}, false
	}

	switch cleaned {
	case "just now", "now", "today":
		return dateOf(ref), true
	case "yesterday":
		return dateOf(ref).AddDate(0, 0, -1), true
	}

	if d, ok := parseAbsolute(cleaned, ref); ok {
		return d, true
	}

	m := relativePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	switch m[2][0] {
	case 'h':
		// Hour offsets subtract from the instant first so "26h" can
		// cross a day boundary before truncation.
		return dateOf(ref.Add(-time.Duration(n) * time.Hour)), true
	case 'd':
		return dateOf(ref).AddDate(0, 0, -n), true
	case 'w':
		return dateOf(ref).AddDate(0, 0, -7*n), true
	case 'm':
		return addMonthsClamped(dateOf(ref), -n), true
	case 'y':
		return addMonthsClamped(dateOf(ref), -12*n), true
	}
	return time.Time{}, false
}

// cleanDateText lowercases the input and strips the noise tokens LinkedIn
// mixes into timestamps ("Edited", "ago", bullet separators).
func cleanDateText(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "edited", "")
	s = strings.ReplaceAll(s, "ago", "")
	s = strings.Map(func(r rune) rune {
		if r == '•' || r == '·' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func parseAbsolute(cleaned string, ref time.Time) (time.Time, bool) {
	titled := titleWords(cleaned)
	for _, layout := range absoluteLayouts {
		parsed, err := time.Parse(layout, titled)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			// Year missing: assume the reference year, rolling back one
			// year if that lands in the future (December scraped in
			// January).
			d := time.Date(ref.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, ref.Location())
			if d.After(dateOf(ref)) {
				d = d.AddDate(-1, 0, 0)
			}
			return d, true
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, ref.Location()), true
	}
	return time.Time{}, false
}

// addMonthsClamped shifts a date by whole months, clamping the day-of-month
// to the target month's length instead of overflowing the way time.AddDate
// does (Mar 31 minus one month is Feb 28/29, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y := t.Year()
	m := int(t.Month()) - 1 + months
	y += m / 12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)
	d := t.Day()
	if last := daysIn(y, month); d > last {
		d = last
	}
	return time.Date(y, month, d, 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOf truncates an instant to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// titleWords capitalizes the first letter of each word so month names match
// time.Parse's case-sensitive layouts.
func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
