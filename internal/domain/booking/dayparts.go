package booking

// DayPart is the customer-facing time preference (pagi/siang/sore/malam).
type DayPart string

const (
	Morning   DayPart = "morning"   // pagi, 07-10
	Noon      DayPart = "noon"      // siang, 11-14
	Afternoon DayPart = "afternoon" // sore, 15-17
	Evening   DayPart = "evening"   // malam, 18-23
)

func dayPartRange(part DayPart) (int, int, bool) {
	switch part {
	case Morning:
		return 7, 10, true
	case Noon:
		return 11, 14, true
	case Afternoon:
		return 15, 17, true
	case Evening:
		return 18, 23, true
	}
	return 0, 0, false
}

// FilterByDayPart keeps only the labels inside the preference window.
// An unknown or empty part returns the input unchanged.
func FilterByDayPart(slots []string, part DayPart) []string {
	lo, hi, ok := dayPartRange(part)
	if !ok {
		return slots
	}

	out := []string{}
	for _, s := range slots {
		h := SlotHour(s)
		if h >= lo && h <= hi {
			out = append(out, s)
		}
	}
	return out
}
