package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportivaid/arena-booking/internal/models"
)

// --------- fakes ---------

type fakeData struct {
	venue   *models.Venue
	sports  []models.Sport
	fields  []models.Field
	revenue *RevenueSummary
	prompt  *models.SystemPrompt

	failFields bool
}

func (f *fakeData) Venue(ctx context.Context) (*models.Venue, error) {
	return f.venue, nil
}

func (f *fakeData) ListSports(ctx context.Context) ([]models.Sport, error) {
	return f.sports, nil
}

func (f *fakeData) ListFields(ctx context.Context) ([]models.Field, error) {
	if f.failFields {
		return nil, errors.New("db down")
	}
	return f.fields, nil
}

func (f *fakeData) RevenueSummary(ctx context.Context) (*RevenueSummary, error) {
	return f.revenue, nil
}

func (f *fakeData) ActivePrompt(ctx context.Context) (*models.SystemPrompt, error) {
	if f.prompt == nil {
		return nil, errors.New("no active prompt")
	}
	return f.prompt, nil
}

type fakeSlots struct {
	booked map[string][]string // key "fieldID/date"
}

func (f *fakeSlots) BookedSlots(ctx context.Context, fieldID uint, date string) ([]string, error) {
	return f.booked[keyOf(fieldID, date)], nil
}

func keyOf(fieldID uint, date string) string {
	return fmt.Sprintf("%d/%s", fieldID, date)
}

// --------- fixtures ---------

func testEngine(booked map[string][]string) (*Engine, *fakeData) {
	badminton := models.Sport{ID: 1, Name: "Badminton"}
	futsal := models.Sport{ID: 2, Name: "Futsal"}

	data := &fakeData{
		venue: &models.Venue{
			Name: "Arena Sportiva", Timezone: "Asia/Jakarta",
			OpenHour: 7, CloseHour: 24,
		},
		sports: []models.Sport{badminton, futsal},
		fields: []models.Field{
			{ID: 1, SportID: 1, Sport: badminton, Name: "Court A", PricePerHour: 50000, Available: true},
			{ID: 2, SportID: 2, Sport: futsal, Name: "Lapangan 1", PricePerHour: 150000, Available: true},
		},
		revenue: &RevenueSummary{RevenueToday: 250000, RevenueMonth: 4000000, CountToday: 3, CountMonth: 41},
		prompt:  &models.SystemPrompt{Content: "Halo! Saya asisten Arena Sportiva.", IsActive: true},
	}

	return NewEngine(data, &fakeSlots{booked: booked}), data
}

// --------- tests ---------

func TestRespondAvailabilityListsFreeSlots(t *testing.T) {
	engine, _ := testEngine(map[string][]string{
		keyOf(1, "2025-06-12"): {"18:00", "19:00"},
	})

	reply := engine.Respond(context.Background(), Input{
		Message: "cek jadwal badminton besok",
		Now:     testNow,
	})

	assert.Equal(t, IntentAvailability, reply.Intent)
	assert.Contains(t, reply.Message, "Court A")
	assert.NotContains(t, reply.Message, "Lapangan 1")

	require.NotEmpty(t, reply.Actions)
	assert.Equal(t, "suggest_booking", reply.Actions[0].Type)
}

func TestRespondAvailabilityRespectsDayPart(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "cek jadwal badminton sore besok",
		Now:     testNow,
	})

	assert.Equal(t, IntentAvailability, reply.Intent)
	assert.Contains(t, reply.Message, "15:00")
	assert.NotContains(t, reply.Message, "18:00")
}

func TestRespondAvailabilityUnknownSport(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "cek jadwal tenis",
		Now:     testNow,
	})

	assert.Equal(t, IntentAvailability, reply.Intent)
	assert.Empty(t, reply.Actions)
}

func TestRespondAvailabilityDegradesOnDataError(t *testing.T) {
	engine, data := testEngine(nil)
	data.failFields = true

	reply := engine.Respond(context.Background(), Input{
		Message: "cek jadwal badminton",
		Now:     testNow,
	})

	assert.Equal(t, IntentAvailability, reply.Intent)
	assert.Equal(t, fallbackReplies[IntentAvailability], reply.Message)
}

func TestRespondPricingAverages(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "berapa harga badminton",
		Now:     testNow,
	})

	assert.Equal(t, IntentPricing, reply.Intent)
	assert.Contains(t, reply.Message, "Badminton")
	assert.Contains(t, reply.Message, "Rp 50.000")
	assert.NotContains(t, reply.Message, "Futsal")
}

func TestRespondBookingAsksForMissingPieces(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "mau booking dong",
		Now:     testNow,
	})

	assert.Equal(t, IntentBooking, reply.Intent)
	assert.Contains(t, reply.Message, "olahraganya")
	assert.Contains(t, reply.Message, "tanggalnya")
	assert.Contains(t, reply.Message, "jamnya")
	assert.Empty(t, reply.Actions)
}

func TestRespondBookingProposesAction(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "mau booking badminton besok jam 19",
		Now:     testNow,
	})

	assert.Equal(t, IntentBooking, reply.Intent)
	require.Len(t, reply.Actions, 1)

	action := reply.Actions[0]
	assert.Equal(t, "create_booking", action.Type)
	assert.Equal(t, "2025-06-12", action.Payload["booking_date"])
	assert.Equal(t, []string{"19:00"}, action.Payload["time_slots"])
	assert.Equal(t, 50000.0, action.Payload["total_price"])
}

func TestRespondBookingSkipsTakenField(t *testing.T) {
	engine, _ := testEngine(map[string][]string{
		keyOf(1, "2025-06-12"): {"19:00"},
	})

	reply := engine.Respond(context.Background(), Input{
		Message: "mau booking badminton besok jam 19",
		Now:     testNow,
	})

	// The only badminton court is taken at 19:00.
	assert.Equal(t, IntentBooking, reply.Intent)
	assert.Empty(t, reply.Actions)
}

func TestRespondTransactionOwnerOnly(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message:  "laporan pendapatan bulan ini",
		UserRole: "cashier",
		Now:      testNow,
	})
	assert.Equal(t, IntentTransaction, reply.Intent)
	assert.NotContains(t, reply.Message, "Rp")

	reply = engine.Respond(context.Background(), Input{
		Message:  "laporan pendapatan bulan ini",
		UserRole: "owner",
		Now:      testNow,
	})
	assert.Contains(t, reply.Message, "Rp 250.000")
	assert.Contains(t, reply.Message, "Rp 4.000.000")
}

func TestRespondGeneralUsesActivePrompt(t *testing.T) {
	engine, _ := testEngine(nil)

	reply := engine.Respond(context.Background(), Input{
		Message: "halo",
		Now:     testNow,
	})

	assert.Equal(t, IntentGeneral, reply.Intent)
	assert.Contains(t, reply.Message, "Halo! Saya asisten Arena Sportiva.")
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", formatRupiah(0))
	assert.Equal(t, "Rp 500", formatRupiah(500))
	assert.Equal(t, "Rp 80.000", formatRupiah(80000))
	assert.Equal(t, "Rp 1.250.000", formatRupiah(1250000))
}
