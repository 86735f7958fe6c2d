package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	firstSlotHour = 9
	lastSlotHour  = 20
)

// Slot is one bookable start time.
type Slot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TimeInputMode tells the client how step 2 collects a time.
type TimeInputMode string

const (
	TimeInputSlots    TimeInputMode = "slots"
	TimeInputFallback TimeInputMode = "fallback"
)

// DailySlots is the fixed hourly set from 09:00 to 20:00.
func DailySlots() []Slot {
	out := make([]Slot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		out = append(out, Slot{Value: clockValue(h, 0), Label: clockLabel(h, 0)})
	}
	return out
}

func isDailySlot(value string) bool {
	for _, s := range DailySlots() {
		if s.Value == value {
			return true
		}
	}
	return false
}

// parseClock reads "H:MM" or "HH:MM" (24h).
func parseClock(s string) (hour, minute int, ok bool) {
	hs, ms, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(ms) != 2 || len(hs) == 0 || len(hs) > 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func withinBusinessHours(hour, minute int) bool {
	mins := hour*60 + minute
	return mins >= firstSlotHour*60 && mins <= lastSlotHour*60
}

func clockValue(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func clockLabel(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// TimeLabel renders a stored "HH:MM" value for display.
func TimeLabel(value string) string {
	h, m, ok := parseClock(value)
	if !ok {
		return value
	}
	return clockLabel(h, m)
}
