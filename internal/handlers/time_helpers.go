package handlers

import (
	"time"

	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

// The venue's timezone drives every date parse; bookings use plain
// YYYY-MM-DD dates interpreted at the venue.

func venueFromDB(db *gorm.DB) *models.Venue {
	var venue models.Venue
	if err := db.Order("id ASC").First(&venue).Error; err != nil {
		return &models.Venue{Timezone: timezone.DefaultTimezone, OpenHour: 7, CloseHour: 24}
	}
	return &venue
}

func locationFromVenue(venue *models.Venue) *time.Location {
	if venue != nil {
		return timezone.Location(venue.Timezone)
	}
	return timezone.Location(timezone.DefaultTimezone)
}

func nowInVenue(venue *models.Venue) time.Time {
	return time.Now().In(locationFromVenue(venue))
}

func parseDateInVenue(venue *models.Venue, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromVenue(venue),
	)
}
