package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
)

// Entities are the pieces pulled out of a message in a second,
// intent-independent pass. Empty fields mean "not mentioned".
type Entities struct {
	Sport          string `json:"sport,omitempty"`
	Date           string `json:"date,omitempty"` // YYYY-MM-DD
	TimePreference string `json:"time_preference,omitempty"`
	StartTime      string `json:"start_time,omitempty"` // "18:00"
	EndTime        string `json:"end_time,omitempty"`   // exclusive
}

// Declaration order is the match priority; first hit wins.
var sportCatalog = []struct {
	canonical string
	aliases   []string
}{
	{"futsal", []string{"futsal"}},
	{"badminton", []string{"badminton", "bulu tangkis", "bulutangkis"}},
	{"basketball", []string{"basketball", "basket"}},
	{"volleyball", []string{"volleyball", "voli", "volley", "bola voli"}},
	{"tennis", []string{"tennis", "tenis"}},
	{"mini soccer", []string{"mini soccer", "minisoccer"}},
}

var dayPartCatalog = []struct {
	word string
	part domain.DayPart
}{
	{"pagi", domain.Morning},
	{"siang", domain.Noon},
	{"sore", domain.Afternoon},
	{"malam", domain.Evening},
	{"morning", domain.Morning},
	// "afternoon" must precede "noon", which it contains.
	{"afternoon", domain.Afternoon},
	{"noon", domain.Noon},
	{"evening", domain.Evening},
}

var weekdayNames = map[string]time.Weekday{
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"jum'at": time.Friday,
	"sabtu":  time.Saturday,
	"minggu": time.Sunday,
}

var monthNames = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maret": time.March,
	"april": time.April, "mei": time.May, "juni": time.June,
	"juli": time.July, "agustus": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "desember": time.December,
}

var (
	timeRangeRe = regexp.MustCompile(`(\d{1,2})(?:[:.]\d{2})?\s*(?:-|–|s/d|sampai|hingga)\s*(\d{1,2})(?:[:.]\d{2})?`)
	singleHourRe = regexp.MustCompile(`jam\s+(\d{1,2})`)
	monthDateRe  = regexp.MustCompile(`(\d{1,2})\s+(januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember)(?:\s+(\d{4}))?`)
)

func ExtractEntities(message string, now time.Time) Entities {
	msg := strings.ToLower(strings.TrimSpace(message))

	ent := Entities{
		Sport:          extractSport(msg),
		TimePreference: extractDayPart(msg),
		Date:           extractDate(msg, now),
	}
	ent.StartTime, ent.EndTime = extractTimeRange(msg, ent.TimePreference)

	return ent
}

func extractSport(msg string) string {
	for _, s := range sportCatalog {
		for _, alias := range s.aliases {
			if strings.Contains(msg, alias) {
				return s.canonical
			}
		}
	}
	return ""
}

func extractDayPart(msg string) string {
	for _, dp := range dayPartCatalog {
		if strings.Contains(msg, dp.word) {
			return string(dp.part)
		}
	}
	return ""
}

func extractDate(msg string, now time.Time) string {
	// Relative words first, they are the most common phrasing.
	switch {
	case strings.Contains(msg, "hari ini"):
		return now.Format("2006-01-02")
	case strings.Contains(msg, "besok"):
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	case strings.Contains(msg, "lusa"):
		return now.AddDate(0, 0, 2).Format("2006-01-02")
	}

	if m := monthDateRe.FindStringSubmatch(msg); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := monthNames[m[2]]
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		// A bare "5 januari" in December means next January.
		if m[3] == "" && d.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())) {
			d = d.AddDate(1, 0, 0)
		}
		return d.Format("2006-01-02")
	}

	for name, wd := range weekdayNames {
		if strings.Contains(msg, name) {
			return nextWeekday(now, wd).Format("2006-01-02")
		}
	}

	return ""
}

// nextWeekday projects the next occurrence of the named weekday; the
// same day next week when the name matches today.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(now.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return now.AddDate(0, 0, delta)
}

func extractTimeRange(msg string, preference string) (string, string) {
	if m := timeRangeRe.FindStringSubmatch(msg); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		start = adjustHour(start, preference)
		end = adjustHour(end, preference)
		if validHour(start) && end > start && end <= 24 {
			return label(start), label(end)
		}
	}

	if m := singleHourRe.FindStringSubmatch(msg); m != nil {
		h, _ := strconv.Atoi(m[1])
		h = adjustHour(h, preference)
		if validHour(h) {
			return label(h), label(h + 1)
		}
	}

	return "", ""
}

// "jam 4 sore" is 16:00; day-part context promotes small hours to PM.
func adjustHour(h int, preference string) int {
	if h < 12 && (preference == string(domain.Afternoon) || preference == string(domain.Evening)) {
		if h+12 <= 23 {
			return h + 12
		}
	}
	return h
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}

func label(h int) string {
	if h == 24 {
		return "24:00"
	}
	return fmt.Sprintf("%02d:00", h)
}
