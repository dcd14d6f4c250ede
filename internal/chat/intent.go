package chat

import (
	"regexp"
	"strings"
)

// Intent is the coarse classification of a customer message. The
// assistant is a rule table: keyword and pattern scores, highest wins.
type Intent string

const (
	IntentAvailability Intent = "availability"
	IntentPricing      Intent = "pricing"
	IntentBooking      Intent = "booking"
	IntentTransaction  Intent = "transaction"
	IntentGeneral      Intent = "general"
)

const (
	keywordScore = 0.3
	patternScore = 0.5
	dayPartScore = 0.2
)

type intentRule struct {
	intent   Intent
	keywords []string
	patterns []*regexp.Regexp

	// dayPartBonus adds dayPartScore when the message names a day part
	// (asking about "sore" usually means a schedule question).
	dayPartBonus bool
}

// Declaration order is the tie-break: on equal scores the earlier rule
// wins. general is the zero-score fallback and never needs to win a tie.
var intentRules = []intentRule{
	{
		intent: IntentAvailability,
		keywords: []string{
			"jadwal", "cek", "kosong", "tersedia", "available",
			"schedule", "slot", "jam berapa saja",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`cek\s+jadwal`),
			regexp.MustCompile(`jadwal\s+\w+`),
			regexp.MustCompile(`masih\s+(ada|kosong)`),
			regexp.MustCompile(`(lapangan|slot|jam)\s+(yang\s+)?kosong`),
		},
		dayPartBonus: true,
	},
	{
		intent: IntentPricing,
		keywords: []string{
			"harga", "berapa", "biaya", "tarif", "price",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`berapa\s+harga`),
			regexp.MustCompile(`harga\s+berapa`),
			regexp.MustCompile(`berapa\s+(biaya|tarif|sewa)`),
			regexp.MustCompile(`harga\s+\w+`),
		},
	},
	{
		intent: IntentBooking,
		keywords: []string{
			"booking", "pesan", "sewa", "book", "reservasi", "mau main",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`mau\s+(booking|pesan|sewa|main)`),
			regexp.MustCompile(`book(ing)?\s+lapangan`),
			regexp.MustCompile(`pesan\s+lapangan`),
		},
	},
	{
		intent: IntentTransaction,
		keywords: []string{
			"transaksi", "pendapatan", "omzet", "pemasukan", "laporan", "revenue",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`laporan\s+(penjualan|pendapatan|transaksi)`),
			regexp.MustCompile(`total\s+(pemasukan|pendapatan|omzet)`),
		},
	},
	{
		intent: IntentGeneral,
		keywords: []string{
			"halo", "hai", "hello", "bantuan", "help",
		},
	},
}

var dayPartWords = []string{
	"pagi", "siang", "sore", "malam",
	"morning", "afternoon", "evening",
}

func mentionsDayPart(msg string) bool {
	for _, w := range dayPartWords {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func scoreIntent(msg string, rule intentRule) float64 {
	score := 0.0

	for _, kw := range rule.keywords {
		if strings.Contains(msg, kw) {
			score += keywordScore
		}
	}

	for _, p := range rule.patterns {
		if p.MatchString(msg) {
			score += patternScore
		}
	}

	if rule.dayPartBonus && mentionsDayPart(msg) {
		score += dayPartScore
	}

	return score
}

// ClassifyIntent scans the rules in declaration order keeping the first
// strict maximum; a zero total falls through to general.
func ClassifyIntent(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	best := IntentGeneral
	bestScore := 0.0

	for _, rule := range intentRules {
		if score := scoreIntent(msg, rule); score > bestScore {
			best = rule.intent
			bestScore = score
		}
	}

	return best
}
