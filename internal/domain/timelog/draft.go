package timelog

import (
	"fmt"
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

// Handle identifies which edge of the range a drag gesture is moving.
// Only one handle may be active at a time.
type Handle int

const (
	HandleNone Handle = iota
	HandleStart
	HandleEnd
)

const (
	// DragSnapMinutes is the grid drag gestures snap to. Typed times are
	// exact to the minute.
	DragSnapMinutes = 15

	// nowFloorMinutes is the rounding applied when a range is anchored at
	// the current wall-clock time.
	nowFloorMinutes = 5

	// endOfDayMinute is the anchor for sessions edited on past dates, 23:59.
	endOfDayMinute = 23*60 + 59

	// DefaultDurationMinutes seeds a fresh draft before any gesture.
	DefaultDurationMinutes = 60
)

// Draft is the working state of the session range editor. It is the single
// source of truth for one in-progress session: drag handles, typed clock
// times, typed durations, presets and date changes all read and write it
// through the canonical operations below, which keep the invariant that
// the duration is preserved unless the user is explicitly editing duration.
//
// A Draft is not safe for concurrent use; each editor instance owns one.
type Draft struct {
	clk clock.Clock

	date       time.Time // midnight, naive
	start, end int       // minutes since midnight, 0 <= start < end <= 1440
	taskID     string
	employeeID string

	dragging Handle

	inFlight  bool
	submitSeq int
}

// NewDraft opens the editor for one day. The range is anchored the same way
// a date change anchors it: ending now (floored to 5 minutes) when date is
// today, otherwise ending at 23:59, with the given duration carved out
// backwards. A non-positive duration falls back to DefaultDurationMinutes.
func NewDraft(clk clock.Clock, taskID, employeeID string, date time.Time, durationMinutes int) *Draft {
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if durationMinutes > timefmt.MinutesPerDay {
		durationMinutes = timefmt.MinutesPerDay
	}
	d := &Draft{
		clk:        clk,
		taskID:     taskID,
		employeeID: employeeID,
		date:       dateOnly(date),
	}
	d.anchorWithDuration(durationMinutes)
	return d
}

// Date returns the draft's calendar day.
func (d *Draft) Date() time.Time { return d.date }

// StartMinute returns the range start in minutes since midnight.
func (d *Draft) StartMinute() int { return d.start }

// EndMinute returns the range end in minutes since midnight.
func (d *Draft) EndMinute() int { return d.end }

// DurationMinutes returns end minus start.
func (d *Draft) DurationMinutes() int { return d.end - d.start }

// MoveStart shifts the range to begin at newStart, preserving duration.
// Used by the start drag handle and the typed start time.
func (d *Draft) MoveStart(newStart int) {
	dur := d.DurationMinutes()
	d.start = timefmt.Clamp(newStart, 0, timefmt.MinutesPerDay-dur)
	d.end = d.start + dur
}

// MoveEnd shifts the range to finish at newEnd, preserving duration.
// Used by the end drag handle and the typed end time.
func (d *Draft) MoveEnd(newEnd int) {
	dur := d.DurationMinutes()
	d.end = timefmt.Clamp(newEnd, dur, timefmt.MinutesPerDay)
	d.start = d.end - dur
}

// SetDuration is the one operation that changes the duration. On a past
// date the start stays put and the end extends. On today's date the range
// models "I just finished working this long": the end re-anchors to the
// current wall-clock minute floored to 5 and the start is carved out
// backwards, clamped at midnight.
func (d *Draft) SetDuration(durationMinutes int) {
	if durationMinutes <= 0 {
		return
	}
	if durationMinutes > timefmt.MinutesPerDay {
		durationMinutes = timefmt.MinutesPerDay
	}
	if d.isToday() {
		d.end = d.nowMinuteFloored()
		d.start = timefmt.Clamp(d.end-durationMinutes, 0, d.end)
		return
	}
	d.end = timefmt.Clamp(d.start+durationMinutes, 0, timefmt.MinutesPerDay)
	d.start = timefmt.Clamp(d.end-durationMinutes, 0, d.end)
}

// ApplyPreset is SetDuration anchored at "now" for today, at 23:59
// otherwise.
func (d *Draft) ApplyPreset(durationMinutes int) {
	if durationMinutes <= 0 {
		return
	}
	if d.isToday() {
		d.SetDuration(durationMinutes)
		return
	}
	d.end = endOfDayMinute
	d.start = timefmt.Clamp(d.end-durationMinutes, 0, d.end)
}

// SetDate moves the draft to another calendar day, re-anchoring the end to
// now (today) or 23:59 (any other day) and keeping the current duration.
func (d *Draft) SetDate(date time.Time) {
	dur := d.DurationMinutes()
	d.date = dateOnly(date)
	d.anchorWithDuration(dur)
}

// SetStartTime applies a typed "HH:MM" start, exact to the minute.
func (d *Draft) SetStartTime(clockTime string) error {
	m, err := timefmt.ParseClock(clockTime)
	if err != nil {
		return err
	}
	d.MoveStart(m)
	return nil
}

// SetEndTime applies a typed "HH:MM" end, exact to the minute.
func (d *Draft) SetEndTime(clockTime string) error {
	m, err := timefmt.ParseClock(clockTime)
	if err != nil {
		return err
	}
	d.MoveEnd(m)
	return nil
}

// SetDurationHHMM applies a typed "HH:MM" duration.
func (d *Draft) SetDurationHHMM(duration string) error {
	dur, err := timefmt.ParseHHMM(duration)
	if err != nil {
		return err
	}
	d.SetDuration(dur.Minutes())
	return nil
}

// BeginDrag activates one handle. A second press while a handle is active
// is rejected.
func (d *Draft) BeginDrag(h Handle) error {
	if h != HandleStart && h != HandleEnd {
		return fmt.Errorf("cannot drag handle %d", h)
	}
	if d.dragging != HandleNone {
		return ErrDragInProgress
	}
	d.dragging = h
	return nil
}

// DragTo moves the active handle toward the pointer position, snapped to
// the 15-minute grid.
func (d *Draft) DragTo(minute int) error {
	snapped := timefmt.Snap(minute, DragSnapMinutes)
	switch d.dragging {
	case HandleStart:
		d.MoveStart(snapped)
	case HandleEnd:
		d.MoveEnd(snapped)
	default:
		return ErrNoActiveDrag
	}
	return nil
}

// EndDrag releases the active handle.
func (d *Draft) EndDrag() {
	d.dragging = HandleNone
}

// Validate runs the pre-submit gate in order: future date, degenerate
// range, future end time on today's date. First failure wins.
func (d *Draft) Validate() error {
	now := d.clk.Now()
	today := dateOnly(now)

	if d.date.After(today) {
		return ErrFutureDate
	}
	if d.end <= d.start {
		return ErrInvalidRange
	}
	if d.date.Equal(today) {
		nowMinute := now.Hour()*60 + now.Minute()
		if d.end > nowMinute {
			return ErrFutureTime
		}
	}
	return nil
}

// SubmitToken ties an in-flight submission to the draft state that issued
// it, so a result arriving after the draft moved on is dropped.
type SubmitToken int

// BeginSubmit validates the draft and, if it passes, marks a submission in
// flight and returns the command to hand to the persistence collaborator.
// Only one submission may be in flight at a time.
func (d *Draft) BeginSubmit() (SubmitToken, CreateTimeLogCommand, error) {
	if d.inFlight {
		return 0, CreateTimeLogCommand{}, ErrSubmissionInFlight
	}
	if err := d.Validate(); err != nil {
		return 0, CreateTimeLogCommand{}, err
	}
	d.submitSeq++
	d.inFlight = true
	return SubmitToken(d.submitSeq), d.Command(), nil
}

// ResolveSubmit reports whether the token belongs to the current in-flight
// submission and clears the flag when it does. A false return means the
// response is stale and must be ignored.
func (d *Draft) ResolveSubmit(tok SubmitToken) bool {
	if !d.inFlight || int(tok) != d.submitSeq {
		return false
	}
	d.inFlight = false
	return true
}

// Command serializes the draft to naive local timestamps.
func (d *Draft) Command() CreateTimeLogCommand {
	return CreateTimeLogCommand{
		TaskID:         d.taskID,
		EmployeeID:     d.employeeID,
		StartTimestamp: naiveTimestamp(d.date, d.start),
		EndTimestamp:   naiveTimestamp(d.date, d.end),
	}
}

func (d *Draft) isToday() bool {
	return d.date.Equal(dateOnly(d.clk.Now()))
}

func (d *Draft) nowMinuteFloored() int {
	now := d.clk.Now()
	return timefmt.FloorTo(now.Hour()*60+now.Minute(), nowFloorMinutes)
}

// anchorWithDuration re-anchors the end to now/23:59 and carves the
// duration out backwards, clamped at midnight.
func (d *Draft) anchorWithDuration(durationMinutes int) {
	if d.isToday() {
		d.end = d.nowMinuteFloored()
	} else {
		d.end = endOfDayMinute
	}
	d.start = timefmt.Clamp(d.end-durationMinutes, 0, d.end)
}

// dateOnly strips the time of day, keeping the wall-clock date. All dates
// in this package are naive single-timezone values.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// naiveTimestamp renders "YYYY-MM-DDTHH:MM:SS" without a timezone suffix.
// The day-end boundary 1440 rolls into the next day's midnight.
func naiveTimestamp(date time.Time, minute int) string {
	d := date.AddDate(0, 0, minute/timefmt.MinutesPerDay)
	minute %= timefmt.MinutesPerDay
	return fmt.Sprintf("%sT%02d:%02d:00", d.Format("2006-01-02"), minute/60, minute%60)
}
