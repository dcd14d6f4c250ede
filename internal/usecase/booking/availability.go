package booking

import (
	"context"

	"github.com/sportivaid/arena-booking/internal/cache"
	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.SlotCache
}

func NewGetAvailability(repo domain.Repository, slotCache *cache.SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: slotCache}
}

// BookedSlots returns the deduplicated union of time_slots across all
// non-cancelled bookings for the field/date.
func (uc *GetAvailability) BookedSlots(
	ctx context.Context,
	fieldID uint,
	date string,
) ([]string, error) {

	if slots, ok := uc.cache.Get(ctx, fieldID, date); ok {
		return slots, nil
	}

	bookings, err := uc.repo.ListBookingsForFieldDate(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	sets := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		sets = append(sets, []string(b.TimeSlots))
	}

	booked := domain.Union(sets...)
	uc.cache.Set(ctx, fieldID, date, booked)

	return booked, nil
}

// FreeSlots is the venue grid minus the booked union, with past hours
// dropped for today and an optional day-part filter applied.
func (uc *GetAvailability) FreeSlots(
	ctx context.Context,
	fieldID uint,
	date string,
	part domain.DayPart,
) ([]string, error) {

	venue, err := uc.repo.GetVenue(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := uc.BookedSlots(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	grid := domain.DayGrid(venue.OpenHour, venue.CloseHour)
	free := domain.Subtract(grid, booked)

	now := timezone.NowIn(venue.Timezone)
	if date == now.Format("2006-01-02") {
		upcoming := []string{}
		for _, s := range free {
			if domain.SlotHour(s) > now.Hour() {
				upcoming = append(upcoming, s)
			}
		}
		free = upcoming
	}

	return domain.FilterByDayPart(free, part), nil
}
