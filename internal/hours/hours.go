// Package hours converts the legacy free-text opening hours format into the
// structured per-weekday representation stored on coffee shop records.
package hours

import (
	"fmt"
	"regexp"
	"strings"

	"coffee-filter-api/internal/models"
)

// Weekdays lists the canonical storage keys in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// dayNames maps full capitalized day names to their storage keys, for
// prefix-matching legacy day list entries.
var dayNames = map[string]string{
	"Monday":    "monday",
	"Tuesday":   "tuesday",
	"Wednesday": "wednesday",
	"Thursday":  "thursday",
	"Friday":    "friday",
	"Saturday":  "saturday",
	"Sunday":    "sunday",
}

// Matches time ranges like "7am - 5pm", "7:00am-5:00pm", "7 AM – 5 PM".
// The dash may be a hyphen or an en-dash.
var rangePattern = regexp.MustCompile(`(\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)?)\s*[-–]\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)?)`)

// ParseLegacy extracts an {open, close} pair from a legacy hours string.
// Matched times are lowercased, internal spaces are stripped and a ":00"
// minute component is collapsed, so "7:00 AM - 5:00 PM" becomes
// {7am, 5pm}. Historical data is noisy; anything unparsable falls back to
// {7am, 5pm} rather than failing.
func ParseLegacy(hoursText string) models.DayHours {
	if hoursText == "" {
		return models.DayHours{Open: "7am", Close: "5pm"}
	}

	match := rangePattern.FindStringSubmatch(hoursText)
	if match == nil {
		return models.DayHours{Open: "7am", Close: "5pm"}
	}

	return models.DayHours{
		Open:  normalizeTime(match[1]),
		Close: normalizeTime(match[2]),
	}
}

func normalizeTime(t string) string {
	t = strings.ToLower(t)
	t = strings.ReplaceAll(t, " ", "")
	t = strings.ReplaceAll(t, ":00", "")
	return t
}

// ExpandDays builds a weekly hours map from a legacy hours string and day
// list. Entries are matched against full day names by prefix, so annotated
// entries like "Wednesday - Closed 1st Wednesday of the month" still receive
// regular Wednesday hours; the annotation is best-effort and ignored. An
// empty day list defaults to Monday through Friday. Each matched day gets its
// own copy of the parsed pair.
func ExpandDays(hoursText string, days []string) models.WeeklyHours {
	parsed := ParseLegacy(hoursText)
	weekly := models.WeeklyHours{}

	if len(days) == 0 {
		for _, key := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
			weekly[key] = parsed
		}
		return weekly
	}

	for _, day := range days {
		for name, key := range dayNames {
			if strings.HasPrefix(day, name) {
				weekly[key] = parsed
				break
			}
		}
	}

	return weekly
}

// Normalize returns the canonical storage form of a weekly hours map: keys
// lowercased, already-canonical input passed through unchanged, absent days
// left absent. It rejects unknown day keys and pairs with an empty open or
// close time.
func Normalize(weekly models.WeeklyHours) (models.WeeklyHours, error) {
	if len(weekly) == 0 {
		return models.WeeklyHours{}, nil
	}

	normalized := make(models.WeeklyHours, len(weekly))
	for day, dh := range weekly {
		key := strings.ToLower(strings.TrimSpace(day))
		if !validDay(key) {
			return nil, fmt.Errorf("unknown weekday key: %q", day)
		}
		if dh.Open == "" || dh.Close == "" {
			return nil, fmt.Errorf("day %q must have both open and close times", key)
		}
		normalized[key] = dh
	}
	return normalized, nil
}

func validDay(key string) bool {
	for _, d := range Weekdays {
		if d == key {
			return true
		}
	}
	return false
}
