package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday 2025-06-11 10:00 WIB.
var testNow = time.Date(2025, 6, 11, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))

func TestExtractSport(t *testing.T) {
	cases := map[string]string{
		"cek jadwal badminton sore":  "badminton",
		"mau main bulu tangkis":      "badminton",
		"berapa harga basketball":    "basketball",
		"lapangan basket kosong gak": "basketball",
		"sewa futsal dong":           "futsal",
		"ada voli?":                  "volleyball",
		"mini soccer besok":          "mini soccer",
		"halo":                       "",
	}
	for msg, want := range cases {
		ent := ExtractEntities(msg, testNow)
		assert.Equal(t, want, ent.Sport, msg)
	}
}

func TestExtractDayPart(t *testing.T) {
	cases := map[string]string{
		"cek jadwal sore":  "afternoon",
		"besok pagi":       "morning",
		"jadwal siang":     "noon",
		"main malam ini":   "evening",
		"evening please":   "evening",
		"free afternoon?":  "afternoon",
		"cek jadwal besok": "",
	}
	for msg, want := range cases {
		ent := ExtractEntities(msg, testNow)
		assert.Equal(t, want, ent.TimePreference, msg)
	}
}

func TestExtractRelativeDates(t *testing.T) {
	assert.Equal(t, "2025-06-11", ExtractEntities("jadwal hari ini", testNow).Date)
	assert.Equal(t, "2025-06-12", ExtractEntities("jadwal besok", testNow).Date)
	assert.Equal(t, "2025-06-13", ExtractEntities("jadwal lusa", testNow).Date)
}

func TestExtractWeekdayDates(t *testing.T) {
	// testNow is a Wednesday; sabtu is three days out.
	assert.Equal(t, "2025-06-14", ExtractEntities("booking sabtu", testNow).Date)
	// The same weekday means next week, never today.
	assert.Equal(t, "2025-06-18", ExtractEntities("booking rabu", testNow).Date)
}

func TestExtractMonthDates(t *testing.T) {
	assert.Equal(t, "2025-06-20", ExtractEntities("booking 20 juni", testNow).Date)
	// A month-day already past rolls to next year.
	assert.Equal(t, "2026-01-05", ExtractEntities("booking 5 januari", testNow).Date)
	// An explicit year is taken as is.
	assert.Equal(t, "2025-01-05", ExtractEntities("booking 5 januari 2025", testNow).Date)
}

func TestExtractTimeRange(t *testing.T) {
	ent := ExtractEntities("booking futsal besok 18-20", testNow)
	assert.Equal(t, "18:00", ent.StartTime)
	assert.Equal(t, "20:00", ent.EndTime)

	ent = ExtractEntities("booking jam 19", testNow)
	assert.Equal(t, "19:00", ent.StartTime)
	assert.Equal(t, "20:00", ent.EndTime)
}

func TestDayPartPromotesSmallHours(t *testing.T) {
	// "jam 4 sore" is 16:00.
	ent := ExtractEntities("booking badminton besok jam 4 sore", testNow)
	assert.Equal(t, "16:00", ent.StartTime)
	assert.Equal(t, "17:00", ent.EndTime)

	// Without a day part, small hours stay as given.
	ent = ExtractEntities("booking badminton besok jam 4", testNow)
	assert.Equal(t, "04:00", ent.StartTime)
}

func TestExtractEntitiesCombined(t *testing.T) {
	ent := ExtractEntities("cek jadwal badminton sore besok", testNow)
	assert.Equal(t, "badminton", ent.Sport)
	assert.Equal(t, "afternoon", ent.TimePreference)
	assert.Equal(t, "2025-06-12", ent.Date)
}
