package scheduling

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultServiceDurationMinutes is used whenever a service carries no usable
// duration information.
const DefaultServiceDurationMinutes = 30

// ServiceRef is one bookable catalog entry inside a booking request: a plain
// service, or a promotional bundle whose explicit duration replaces the sum
// of its components.
type ServiceRef struct {
	ID              string
	Name            string
	DurationMinutes int    // explicit minutes, preferred when positive
	DurationText    string // legacy free text, e.g. "45 mins" or "1 hour 30 minutes"
	BundleOverride  bool   // promotional bundle timed as a unit
}

var durationPartRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)
var clockRe = regexp.MustCompile(`^\d{1,2}:\d{1,2}$`)

// ResolveServiceDuration maps a single service reference to integer minutes.
// It prefers the explicit minutes field, then the free-text duration, then
// the name as a last-ditch parse target, and degrades to the default rather
// than failing: absence of information never rejects the caller.
func ResolveServiceDuration(ref ServiceRef) int {
	return resolveServiceDuration(ref, DefaultServiceDurationMinutes)
}

func resolveServiceDuration(ref ServiceRef, defaultMinutes int) int {
	if ref.DurationMinutes > 0 {
		return ref.DurationMinutes
	}
	if d := parseDurationText(ref.DurationText); d > 0 {
		return d
	}
	if d := parseDurationText(ref.Name); d > 0 {
		return d
	}
	return defaultMinutes
}

// ResolveTotalDuration sums the resolved durations of all requested services.
// A promotional bundle with its own duration replaces the sum entirely; when
// more than one bundle override is present the first in list order wins.
func ResolveTotalDuration(refs []ServiceRef) int {
	return ResolveTotalDurationWith(refs, DefaultServiceDurationMinutes)
}

// ResolveTotalDurationWith is ResolveTotalDuration with a configurable
// fallback for services that carry no duration information. A nonpositive
// defaultMinutes falls back to DefaultServiceDurationMinutes.
func ResolveTotalDurationWith(refs []ServiceRef, defaultMinutes int) int {
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultServiceDurationMinutes
	}
	total := 0
	for _, ref := range refs {
		if ref.BundleOverride && ref.DurationMinutes > 0 {
			return ref.DurationMinutes
		}
		total += resolveServiceDuration(ref, defaultMinutes)
	}
	return total
}

// parseDurationText extracts minutes from free text. Supported forms:
// "90", "45 mins", "1.5 hours", "1 hour 30 minutes" and clock-style "1:30".
// Returns 0 when nothing parseable is found.
func parseDurationText(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	if clockRe.MatchString(s) {
		parts := strings.SplitN(s, ":", 2)
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil {
			return h*60 + m
		}
	}

	total := 0.0
	for _, match := range durationPartRe.FindAllStringSubmatch(s, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(match[2], "h") {
			total += value * 60
		} else {
			total += value
		}
	}
	if total > 0 {
		return int(total + 0.5)
	}

	if value, err := strconv.ParseFloat(s, 64); err == nil && value > 0 {
		return int(value + 0.5)
	}
	return 0
}
