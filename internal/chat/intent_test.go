package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"cek jadwal badminton sore", IntentAvailability},
		{"masih ada slot kosong besok?", IntentAvailability},
		{"lapangan yang kosong jam berapa saja", IntentAvailability},
		{"berapa harga basketball", IntentPricing},
		{"harga sewa futsal berapa ya", IntentPricing},
		{"mau booking futsal besok jam 19", IntentBooking},
		{"pesan lapangan buat sabtu", IntentBooking},
		{"laporan pendapatan bulan ini", IntentTransaction},
		{"total pemasukan hari ini dong", IntentTransaction},
		{"halo", IntentGeneral},
		{"", IntentGeneral},
		{"apakah besok hujan", IntentGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyIntent(tc.message), tc.message)
	}
}

func TestClassifyIntentIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, IntentAvailability, ClassifyIntent("CEK JADWAL FUTSAL"))
}

// On equal scores the earlier rule wins; a bare keyword from a later
// rule never displaces an earlier one.
func TestClassifyIntentTieBreakPrefersDeclarationOrder(t *testing.T) {
	// "tersedia" (availability keyword) and "sewa" (booking keyword)
	// both score one keyword; availability is declared first.
	assert.Equal(t, IntentAvailability, ClassifyIntent("tersedia buat sewa tidak"))
}

func TestScoreBreakdown(t *testing.T) {
	// "cek jadwal badminton sore": keywords cek + jadwal, patterns
	// "cek jadwal" + "jadwal badminton", day-part bonus.
	msg := "cek jadwal badminton sore"
	got := scoreIntent(msg, intentRules[0])
	assert.InDelta(t, 2*keywordScore+2*patternScore+dayPartScore, got, 1e-9)
}
