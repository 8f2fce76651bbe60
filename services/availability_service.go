package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skillswap-app/skillswap_api/models"
)

const dateLayout = "2006-01-02"

// TimeSlots is the fixed set of hourly labels a member can open for teaching,
// "12:00 AM" through "11:00 PM", in hour-of-day order.
var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, 24)
	for i := 0; i < 24; i++ {
		hour := i % 12
		if hour == 0 {
			hour = 12
		}
		period := "AM"
		if i >= 12 {
			period = "PM"
		}
		slots[i] = fmt.Sprintf("%d:00 %s", hour, period)
	}
	return slots
}

// SlotHour decodes a 12-hour slot label into its hour-of-day.
// "12:00 AM" is hour 0 and "12:00 PM" is hour 12.
func SlotHour(slot string) (int, bool) {
	clock, period, found := strings.Cut(slot, " ")
	if !found {
		return 0, false
	}
	var hour int
	if _, err := fmt.Sscanf(clock, "%d:00", &hour); err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	switch period {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}
	return hour, true
}

// IsSlotInPast reports whether the (date, slot) pair, read as an instant in
// loc, lies strictly before now.
func IsSlotInPast(date, slot string, now time.Time, loc *time.Location) bool {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return false
	}
	hour, ok := SlotHour(slot)
	if !ok {
		return false
	}
	instant := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
	return instant.Before(now)
}

// IsDateInPast compares at day granularity: true iff the date's midnight is
// strictly before the start of now's day.
func IsDateInPast(date string, now time.Time) bool {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(startOfToday)
}

// ToggleSlot flips the given slot in the member's selection for date. A slot
// whose instant has already passed is left exactly as-is. The input slice is
// never mutated; the result is sorted ascending by hour-of-day.
func ToggleSlot(current []string, slot, date string, now time.Time, loc *time.Location) []string {
	if IsSlotInPast(date, slot, now, loc) {
		return current
	}

	result := make([]string, 0, len(current)+1)
	removed := false
	for _, s := range current {
		if s == slot {
			removed = true
			continue
		}
		result = append(result, s)
	}
	if !removed {
		result = append(result, slot)
	}

	SortSlots(result)
	return result
}

// SortSlots orders slot labels ascending by hour-of-day, in place.
func SortSlots(slots []string) {
	sort.SliceStable(slots, func(i, j int) bool {
		hi, _ := SlotHour(slots[i])
		hj, _ := SlotHour(slots[j])
		return hi < hj
	})
}

// SaveAvailability returns a copy of the map with the date key replaced (or
// inserted) with the given slots. An empty slot list is stored as-is: whether
// an empty day should instead drop its key is a persistence-boundary decision
// this layer does not make.
func SaveAvailability(m models.AvailabilityMap, date string, slots []string) models.AvailabilityMap {
	updated := make(models.AvailabilityMap, len(m)+1)
	for k, v := range m {
		updated[k] = v
	}
	copied := make([]string, len(slots))
	copy(copied, slots)
	updated[date] = copied
	return updated
}

// PruneExpiredDates drops date keys whose day has fully passed. Today's key
// and future keys survive untouched, including ones holding an empty list.
func PruneExpiredDates(m models.AvailabilityMap, now time.Time) models.AvailabilityMap {
	pruned := make(models.AvailabilityMap, len(m))
	for date, slots := range m {
		if IsDateInPast(date, now) {
			continue
		}
		pruned[date] = slots
	}
	return pruned
}
