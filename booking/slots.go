package booking

import (
	"iter"
	"time"

	"github.com/hanksha/club-booking-backend/catalog"
	"github.com/hanksha/club-booking-backend/clock"
)

// interval is a half-open [start, end) range in minutes since midnight.
type interval struct {
	start int
	end   int
}

func (i interval) overlaps(other interval) bool {
	return other.start < i.end && other.end > i.start
}

func (i interval) String() string {
	return clock.FormatClock(i.start) + "-" + clock.FormatClock(i.end)
}

// slotIntervals yields the potential slots of service on date: contiguous,
// slotDurationMinutes long, from opening time up to closing time, the last
// one truncated at closing. Nothing is yielded on closed weekdays or for a
// malformed service definition.
func slotIntervals(service catalog.Service, date time.Time, loc *time.Location) iter.Seq[interval] {
	return func(yield func(interval) bool) {
		if !service.OpensOn(clock.Weekday(date, loc)) || service.SlotDurationMinutes <= 0 {
			return
		}

		opening, err := clock.ParseClock(service.OpeningTime)
		if err != nil {
			return
		}

		closing, err := clock.ParseClock(service.ClosingTime)
		if err != nil {
			return
		}

		for start := opening; start < closing; start += service.SlotDurationMinutes {
			end := min(start+service.SlotDurationMinutes, closing)

			if !yield(interval{start: start, end: end}) {
				return
			}
		}
	}
}

// GenerateSlots returns the "HH:MM-HH:MM" display strings of every potential
// slot of service on date. The sequence is recomputed on every iteration.
func GenerateSlots(service catalog.Service, date time.Time, loc *time.Location) iter.Seq[string] {
	return func(yield func(string) bool) {
		for slot := range slotIntervals(service, date, loc) {
			if !yield(slot.String()) {
				return
			}
		}
	}
}

// availableSlots filters the potential slots of service on date against the
// given bookings. Only bookings holding their slot are considered.
func availableSlots(service catalog.Service, date time.Time, loc *time.Location, bookings []Booking) []string {
	taken := make([]interval, 0, len(bookings))

	for _, b := range bookings {
		if !b.Status.IsActive() {
			continue
		}

		start, err := clock.ParseClock(b.StartTime)
		if err != nil {
			continue
		}

		end, err := clock.ParseClock(b.EndTime)
		if err != nil {
			continue
		}

		taken = append(taken, interval{start: start, end: end})
	}

	available := []string{}

	for slot := range slotIntervals(service, date, loc) {
		free := true

		for _, t := range taken {
			if t.overlaps(slot) {
				free = false
				break
			}
		}

		if free {
			available = append(available, slot.String())
		}
	}

	return available
}
