package booking

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/sportivaid/arena-booking/internal/httperr"
)

// A slot is a fixed one-hour label ("18:00") bookable for a field on a
// given date. The venue's open/close hours derive the day grid.

const (
	DefaultOpenHour  = 7
	DefaultCloseHour = 24
)

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):00$`)

func IsSlotLabel(s string) bool {
	return slotPattern.MatchString(s)
}

func SlotHour(label string) int {
	var h int
	fmt.Sscanf(label, "%d:00", &h)
	return h
}

func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// DayGrid returns the bookable labels [openHour, closeHour).
func DayGrid(openHour, closeHour int) []string {
	if openHour < 0 || closeHour <= openHour {
		openHour, closeHour = DefaultOpenHour, DefaultCloseHour
	}
	if closeHour > 24 {
		closeHour = 24
	}

	grid := make([]string, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		grid = append(grid, SlotLabel(h))
	}
	return grid
}

// NormalizeSlots validates, deduplicates and sorts the requested labels.
func NormalizeSlots(slots []string) ([]string, error) {
	if len(slots) == 0 {
		return nil, httperr.ErrBusiness("empty_time_slots")
	}

	seen := make(map[string]bool, len(slots))
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if !IsSlotLabel(s) {
			return nil, httperr.ErrBusiness("invalid_time_slot")
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	sort.Strings(out)
	return out, nil
}

func HasOverlap(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if set[s] {
			return true
		}
	}
	return false
}

// Union flattens slot sets into one deduplicated, sorted set.
func Union(sets ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, set := range sets {
		for _, s := range set {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Subtract returns grid labels not present in taken, preserving order.
func Subtract(grid, taken []string) []string {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}

	out := []string{}
	for _, s := range grid {
		if !set[s] {
			out = append(out, s)
		}
	}
	return out
}
