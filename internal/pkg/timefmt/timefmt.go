package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Duration is a non-negative minute count. All tracked-duration arithmetic
// and threshold comparison happens on this integer form, never on the
// "HH:MM" wire representation.
type Duration int

// ParseHHMM parses a zero-padded "HH:MM" string. Hours may exceed 24 (a
// monthly total like "172:30" is valid); minutes must be in [0, 59].
func ParseHHMM(s string) (Duration, error) {
	hh, mm, ok := splitHHMM(s)
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: expected HH:MM", s)
	}
	return Duration(hh*60 + mm), nil
}

// Minutes returns the duration as an integer minute count.
func (d Duration) Minutes() int {
	return int(d)
}

// String re-serializes the duration as zero-padded "HH:MM" with explicit
// hour carry and no modulo-24 wraparound.
func (d Duration) String() string {
	m := int(d)
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Sum adds durations minute-accurately.
func Sum(ds ...Duration) Duration {
	var total Duration
	for _, d := range ds {
		total += d
	}
	return total
}

// MinuteOfDay is a minute offset since local midnight, in [0, 1440).
type MinuteOfDay = int

// ParseClock parses a "HH:MM" wall-clock time bounded to one day.
func ParseClock(s string) (MinuteOfDay, error) {
	hh, mm, ok := splitHHMM(s)
	if !ok || hh > 23 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM in [00:00, 23:59]", s)
	}
	return hh*60 + mm, nil
}

// ParseClockEnd parses a "HH:MM" wall-clock time closing a range. Unlike
// ParseClock it accepts the day-end boundary "24:00", which is how a range
// ending at next-day midnight is written on the wire.
func ParseClockEnd(s string) (MinuteOfDay, error) {
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	return ParseClock(s)
}

// FormatClock renders a minute-of-day as "HH:MM". The day-end boundary 1440
// renders as "24:00".
func FormatClock(m MinuteOfDay) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorTo rounds m down to the nearest multiple of step.
func FloorTo(m, step int) int {
	if step <= 0 {
		return m
	}
	return m - m%step
}

// Snap rounds m to the nearest multiple of step, ties rounding up.
func Snap(m, step int) int {
	if step <= 0 {
		return m
	}
	rem := m % step
	if rem*2 >= step {
		return m - rem + step
	}
	return m - rem
}

func splitHHMM(s string) (hh, mm int, ok bool) {
	h, m, found := strings.Cut(s, ":")
	if !found || len(h) < 2 || len(m) != 2 {
		return 0, 0, false
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 {
		return 0, 0, false
	}
	mm, err = strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, 0, false
	}
	return hh, mm, true
}
