package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

const lookAheadDays = 3
const maxSlotsShown = 6

// Canned answers when the data fetch fails; the widget never sees an
// error payload.
var fallbackReplies = map[Intent]string{
	IntentAvailability: "Maaf, saya belum bisa mengambil jadwal saat ini. Silakan coba lagi sebentar lagi ya.",
	IntentPricing:      "Maaf, info harga sedang tidak tersedia. Silakan coba lagi sebentar lagi ya.",
	IntentBooking:      "Maaf, booking lewat chat sedang terganggu. Silakan pakai halaman booking ya.",
	IntentTransaction:  "Maaf, laporan transaksi sedang tidak tersedia.",
	IntentGeneral:      "Halo! Ada yang bisa saya bantu seputar jadwal, harga, atau booking lapangan?",
}

func fallback(intent Intent, ent Entities) *Reply {
	return &Reply{
		Message:  fallbackReplies[intent],
		Actions:  []Action{},
		Intent:   intent,
		Entities: ent,
	}
}

// Respond classifies one message and generates the answer. Errors from
// the data layer degrade to canned replies, never to a failed request.
func (e *Engine) Respond(ctx context.Context, in Input) *Reply {
	now := in.Now
	if now.IsZero() {
		now = timezone.Now()
	}

	intent := ClassifyIntent(in.Message)
	ent := ExtractEntities(in.Message, now)

	switch intent {
	case IntentAvailability:
		return e.respondAvailability(ctx, ent, now)
	case IntentPricing:
		return e.respondPricing(ctx, ent)
	case IntentBooking:
		return e.respondBooking(ctx, ent, now)
	case IntentTransaction:
		return e.respondTransaction(ctx, in.UserRole, ent)
	default:
		return e.respondGeneral(ctx, ent)
	}
}

// --------------------------------------------------
// availability
// --------------------------------------------------

func (e *Engine) respondAvailability(ctx context.Context, ent Entities, now time.Time) *Reply {
	fields, err := e.data.ListFields(ctx)
	if err != nil {
		return fallback(IntentAvailability, ent)
	}

	venue, err := e.data.Venue(ctx)
	if err != nil {
		return fallback(IntentAvailability, ent)
	}

	fields = filterFieldsBySport(fields, ent.Sport)
	if len(fields) == 0 {
		return &Reply{
			Message:  "Hmm, belum ada lapangan untuk olahraga itu. Coba tanya jadwal futsal, badminton, atau basket ya.",
			Actions:  []Action{},
			Intent:   IntentAvailability,
			Entities: ent,
		}
	}

	startDate := now
	if ent.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", ent.Date, now.Location()); err == nil {
			startDate = d
		}
	}

	grid := domain.DayGrid(venue.OpenHour, venue.CloseHour)
	part := domain.DayPart(ent.TimePreference)

	var lines []string
	var actions []Action

	for day := 0; day < lookAheadDays; day++ {
		date := startDate.AddDate(0, 0, day).Format("2006-01-02")

		for _, f := range fields {
			booked, err := e.slots.BookedSlots(ctx, f.ID, date)
			if err != nil {
				return fallback(IntentAvailability, ent)
			}

			free := domain.Subtract(grid, booked)
			free = dropPastSlots(free, date, now)
			free = domain.FilterByDayPart(free, part)
			if len(free) == 0 {
				continue
			}

			lines = append(lines, fmt.Sprintf(
				"• %s (%s): %s",
				f.Name, indoDate(date, now.Location()), joinSlots(free),
			))

			if len(actions) == 0 {
				actions = append(actions, Action{
					Type:  "suggest_booking",
					Label: fmt.Sprintf("Booking %s %s", f.Name, free[0]),
					Payload: map[string]any{
						"field_id":     f.ID,
						"field_name":   f.Name,
						"booking_date": date,
						"time_slots":   []string{free[0]},
						"total_price":  f.PricePerHour,
					},
				})
			}
		}
	}

	if len(lines) == 0 {
		return &Reply{
			Message:  "Semua slot penuh untuk tanggal itu 😔 Coba tanggal lain atau jam yang berbeda ya.",
			Actions:  []Action{},
			Intent:   IntentAvailability,
			Entities: ent,
		}
	}

	return &Reply{
		Message:  "Berikut jadwal yang masih kosong:\n" + strings.Join(lines, "\n"),
		Actions:  actions,
		Intent:   IntentAvailability,
		Entities: ent,
	}
}

// --------------------------------------------------
// pricing
// --------------------------------------------------

func (e *Engine) respondPricing(ctx context.Context, ent Entities) *Reply {
	sports, err := e.data.ListSports(ctx)
	if err != nil {
		return fallback(IntentPricing, ent)
	}
	fields, err := e.data.ListFields(ctx)
	if err != nil {
		return fallback(IntentPricing, ent)
	}

	type agg struct {
		total float64
		count int
	}
	perSport := make(map[uint]*agg)
	for _, f := range fields {
		a := perSport[f.SportID]
		if a == nil {
			a = &agg{}
			perSport[f.SportID] = a
		}
		a.total += f.PricePerHour
		a.count++
	}

	var lines []string
	for _, s := range sports {
		if ent.Sport != "" && !sportNameMatches(s.Name, ent.Sport) {
			continue
		}
		a := perSport[s.ID]
		if a == nil || a.count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"• %s: %s/jam (rata-rata)",
			s.Name, formatRupiah(a.total/float64(a.count)),
		))
	}

	if len(lines) == 0 {
		return &Reply{
			Message:  "Maaf, saya belum punya info harga untuk olahraga itu.",
			Actions:  []Action{},
			Intent:   IntentPricing,
			Entities: ent,
		}
	}

	return &Reply{
		Message:  "Berikut daftar harganya:\n" + strings.Join(lines, "\n"),
		Actions:  []Action{},
		Intent:   IntentPricing,
		Entities: ent,
	}
}

// --------------------------------------------------
// booking
// --------------------------------------------------

func (e *Engine) respondBooking(ctx context.Context, ent Entities, now time.Time) *Reply {
	var missing []string
	if ent.Sport == "" {
		missing = append(missing, "olahraganya")
	}
	if ent.Date == "" {
		missing = append(missing, "tanggalnya")
	}
	if ent.StartTime == "" {
		missing = append(missing, "jamnya")
	}

	if len(missing) > 0 {
		return &Reply{
			Message: fmt.Sprintf(
				"Siap! Tolong sebutkan %s ya. Contoh: \"booking badminton besok jam 19\".",
				strings.Join(missing, ", "),
			),
			Actions:  []Action{},
			Intent:   IntentBooking,
			Entities: ent,
		}
	}

	fields, err := e.data.ListFields(ctx)
	if err != nil {
		return fallback(IntentBooking, ent)
	}

	fields = filterFieldsBySport(fields, ent.Sport)
	if len(fields) == 0 {
		return &Reply{
			Message:  "Maaf, belum ada lapangan untuk olahraga itu.",
			Actions:  []Action{},
			Intent:   IntentBooking,
			Entities: ent,
		}
	}

	slots := slotRange(ent.StartTime, ent.EndTime)

	for _, f := range fields {
		booked, err := e.slots.BookedSlots(ctx, f.ID, ent.Date)
		if err != nil {
			return fallback(IntentBooking, ent)
		}
		if domain.HasOverlap(booked, slots) {
			continue
		}

		total := f.PricePerHour * float64(len(slots))
		return &Reply{
			Message: fmt.Sprintf(
				"%s masih kosong %s jam %s. Totalnya %s. Lanjutkan booking?",
				f.Name, indoDate(ent.Date, now.Location()),
				strings.Join(slots, ", "), formatRupiah(total),
			),
			Actions: []Action{{
				Type:  "create_booking",
				Label: "Lanjutkan booking",
				Payload: map[string]any{
					"field_id":     f.ID,
					"field_name":   f.Name,
					"booking_date": ent.Date,
					"time_slots":   slots,
					"total_price":  total,
				},
			}},
			Intent:   IntentBooking,
			Entities: ent,
		}
	}

	return &Reply{
		Message:  "Jam itu sudah penuh di semua lapangan 😔 Coba cek jadwal dulu untuk lihat slot yang masih kosong.",
		Actions:  []Action{},
		Intent:   IntentBooking,
		Entities: ent,
	}
}

// --------------------------------------------------
// transaction (owner only)
// --------------------------------------------------

func (e *Engine) respondTransaction(ctx context.Context, userRole string, ent Entities) *Reply {
	if userRole != "owner" {
		return &Reply{
			Message:  "Maaf, laporan transaksi hanya bisa diakses pemilik.",
			Actions:  []Action{},
			Intent:   IntentTransaction,
			Entities: ent,
		}
	}

	sum, err := e.data.RevenueSummary(ctx)
	if err != nil {
		return fallback(IntentTransaction, ent)
	}

	return &Reply{
		Message: fmt.Sprintf(
			"Ringkasan transaksi:\n• Hari ini: %s (%d transaksi)\n• Bulan ini: %s (%d transaksi)",
			formatRupiah(sum.RevenueToday), sum.CountToday,
			formatRupiah(sum.RevenueMonth), sum.CountMonth,
		),
		Actions:  []Action{},
		Intent:   IntentTransaction,
		Entities: ent,
	}
}

// --------------------------------------------------
// general
// --------------------------------------------------

func (e *Engine) respondGeneral(ctx context.Context, ent Entities) *Reply {
	greeting := fallbackReplies[IntentGeneral]
	if prompt, err := e.data.ActivePrompt(ctx); err == nil && prompt != nil && prompt.Content != "" {
		greeting = prompt.Content
	}

	return &Reply{
		Message:  greeting + "\n\nCoba tanya: \"cek jadwal badminton sore\" atau \"berapa harga futsal\".",
		Actions:  []Action{},
		Intent:   IntentGeneral,
		Entities: ent,
	}
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func filterFieldsBySport(fields []models.Field, sport string) []models.Field {
	out := []models.Field{}
	for _, f := range fields {
		if !f.Available {
			continue
		}
		if sport != "" && !sportNameMatches(f.Sport.Name, sport) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func sportNameMatches(name, wanted string) bool {
	n := strings.ToLower(name)
	w := strings.ToLower(wanted)
	return strings.Contains(n, w) || strings.Contains(w, n)
}

func slotRange(start, end string) []string {
	from := domain.SlotHour(start)
	to := from + 1
	if end != "" {
		if h := domain.SlotHour(end); h > from {
			to = h
		}
	}

	slots := make([]string, 0, to-from)
	for h := from; h < to; h++ {
		slots = append(slots, domain.SlotLabel(h))
	}
	return slots
}

func dropPastSlots(slots []string, date string, now time.Time) []string {
	if date != now.Format("2006-01-02") {
		return slots
	}

	out := []string{}
	for _, s := range slots {
		if domain.SlotHour(s) > now.Hour() {
			out = append(out, s)
		}
	}
	return out
}

func joinSlots(slots []string) string {
	if len(slots) <= maxSlotsShown {
		return strings.Join(slots, ", ")
	}
	return strings.Join(slots[:maxSlotsShown], ", ") + ", dll."
}

var indoDays = map[time.Weekday]string{
	time.Monday: "Senin", time.Tuesday: "Selasa", time.Wednesday: "Rabu",
	time.Thursday: "Kamis", time.Friday: "Jumat", time.Saturday: "Sabtu",
	time.Sunday: "Minggu",
}

func indoDate(date string, loc *time.Location) string {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %s", indoDays[d.Weekday()], d.Format("02/01"))
}

// formatRupiah renders "Rp 80.000" with dot thousand separators.
func formatRupiah(amount float64) string {
	n := int64(amount)
	if n < 0 {
		n = -n
	}

	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return "Rp " + strings.Join(parts, ".")
}
