package scheduling

// DefaultGranularityMinutes is the scheduling grid step used when the caller
// does not supply one.
const DefaultGranularityMinutes = 30

// GenerateSlots produces the ordered candidate start times inside
// [windowStart, windowEnd) at the given granularity. A slot is emitted while
// its start is strictly before windowEnd; whether start+duration still fits
// the window is the caller's concern, since duration varies per request while
// the grid does not.
func GenerateSlots(windowStart, windowEnd string, granularityMinutes int) []string {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultGranularityMinutes
	}
	var slots []string
	for t := windowStart; Compare(t, windowEnd) < 0; t = AddMinutes(t, granularityMinutes) {
		slots = append(slots, t)
	}
	return slots
}
