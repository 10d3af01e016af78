package timelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
)

var (
	// Friday 2024-03-15, 14:00 local wall clock.
	testNow   = time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	today     = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	yesterday = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	tomorrow  = time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
)

func newTestDraft(t *testing.T, date time.Time, durationMinutes int) *Draft {
	t.Helper()
	return NewDraft(clock.Fixed(testNow), "task-1", "emp-1", date, durationMinutes)
}

func TestNewDraft_AnchorsToday(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, today, 60)
	assert.Equal(t, 840, d.EndMinute()) // 14:00
	assert.Equal(t, 780, d.StartMinute())
}

func TestNewDraft_AnchorsPastDayAtEndOfDay(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 90)
	assert.Equal(t, 23*60+59, d.EndMinute())
	assert.Equal(t, 23*60+59-90, d.StartMinute())
}

func TestNewDraft_FloorsNowToFiveMinutes(t *testing.T) {
	t.Parallel()

	clk := clock.Fixed(time.Date(2024, 3, 15, 14, 3, 40, 0, time.UTC))
	d := NewDraft(clk, "task-1", "emp-1", today, 60)
	assert.Equal(t, 840, d.EndMinute()) // 14:03 floors to 14:00
	assert.Equal(t, 780, d.StartMinute())
}

func TestMoveStart_PreservesDuration(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	for _, newStart := range []int{0, 300, 715, 1380, 1440} {
		before := d.DurationMinutes()
		d.MoveStart(newStart)
		assert.Equal(t, before, d.DurationMinutes(), "MoveStart(%d)", newStart)
	}
}

func TestMoveEnd_PreservesDuration(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 45)
	for _, newEnd := range []int{10, 45, 312, 1440, 2000} {
		before := d.DurationMinutes()
		d.MoveEnd(newEnd)
		assert.Equal(t, before, d.DurationMinutes(), "MoveEnd(%d)", newEnd)
	}
}

func TestMoveStart_ClampsAtMidnight(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	d.MoveStart(-50)
	assert.Equal(t, 0, d.StartMinute())
	assert.Equal(t, 60, d.EndMinute())
}

func TestMoveEnd_ClampsAtDayEnd(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 90)
	d.MoveEnd(2000)
	assert.Equal(t, 1440, d.EndMinute())
	assert.Equal(t, 1350, d.StartMinute())
}

func TestSetDuration_PastDateExtendsFromStart(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 30)
	d.MoveStart(600) // 10:00
	d.SetDuration(120)
	assert.Equal(t, 600, d.StartMinute())
	assert.Equal(t, 720, d.EndMinute())
}

func TestSetDuration_TodayAnchorsAtNow(t *testing.T) {
	t.Parallel()

	// "I just finished working 120 minutes ago": end re-anchors to now.
	d := newTestDraft(t, today, 30)
	d.SetDuration(120)
	assert.Equal(t, 840, d.EndMinute()) // 14:00
	assert.Equal(t, 720, d.StartMinute())
}

func TestSetDuration_TodayClampsStartAtMidnight(t *testing.T) {
	t.Parallel()

	clk := clock.Fixed(time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC))
	d := NewDraft(clk, "task-1", "emp-1", today, 30)
	d.SetDuration(120)
	assert.Equal(t, 60, d.EndMinute())
	assert.Equal(t, 0, d.StartMinute())
}

func TestApplyPreset_TodayAnchorsAtNow(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, today, 30)
	d.ApplyPreset(60)
	assert.Equal(t, 840, d.EndMinute())
	assert.Equal(t, 780, d.StartMinute())
	assert.Equal(t, 60, d.DurationMinutes())
}

func TestApplyPreset_PastDayAnchorsAtEndOfDay(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 30)
	d.ApplyPreset(60)
	assert.Equal(t, 23*60+59, d.EndMinute())
	assert.Equal(t, 23*60+59-60, d.StartMinute())
}

func TestSetDate_ReanchorsPreservingDuration(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 75)
	d.MoveStart(300)
	require.Equal(t, 75, d.DurationMinutes())

	d.SetDate(today)
	assert.Equal(t, 840, d.EndMinute()) // now
	assert.Equal(t, 840-75, d.StartMinute())
	assert.Equal(t, 75, d.DurationMinutes())

	d.SetDate(yesterday)
	assert.Equal(t, 23*60+59, d.EndMinute())
	assert.Equal(t, 75, d.DurationMinutes())
}

func TestTypedTimes_AreExactMinute(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	require.NoError(t, d.SetStartTime("09:07"))
	assert.Equal(t, 9*60+7, d.StartMinute())
	assert.Equal(t, 9*60+7+60, d.EndMinute())

	require.NoError(t, d.SetEndTime("11:02"))
	assert.Equal(t, 11*60+2, d.EndMinute())
	assert.Equal(t, 60, d.DurationMinutes())

	assert.Error(t, d.SetStartTime("25:00"))
	assert.Error(t, d.SetEndTime("not-a-time"))
}

func TestDrag_SnapsToFifteenMinutes(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	require.NoError(t, d.BeginDrag(HandleStart))
	require.NoError(t, d.DragTo(605)) // snaps to 10:00
	assert.Equal(t, 600, d.StartMinute())
	assert.Equal(t, 660, d.EndMinute())
	d.EndDrag()

	require.NoError(t, d.BeginDrag(HandleEnd))
	require.NoError(t, d.DragTo(713)) // snaps to 720
	assert.Equal(t, 720, d.EndMinute())
	assert.Equal(t, 660, d.StartMinute())
	d.EndDrag()
}

func TestDrag_SingleActiveHandle(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	require.NoError(t, d.BeginDrag(HandleStart))
	assert.ErrorIs(t, d.BeginDrag(HandleEnd), ErrDragInProgress)
	d.EndDrag()

	assert.ErrorIs(t, d.DragTo(500), ErrNoActiveDrag)
	require.NoError(t, d.BeginDrag(HandleEnd))
	d.EndDrag()
}

func TestValidate_FutureDateWinsOverEverything(t *testing.T) {
	t.Parallel()

	// Tomorrow's drafts always fail with the date error, never the
	// future-time error, regardless of the chosen times.
	d := newTestDraft(t, tomorrow, 60)
	assert.ErrorIs(t, d.Validate(), ErrFutureDate)

	d.MoveEnd(2000)
	assert.ErrorIs(t, d.Validate(), ErrFutureDate)

	d.ApplyPreset(5)
	assert.ErrorIs(t, d.Validate(), ErrFutureDate)
}

func TestValidate_DegenerateRange(t *testing.T) {
	t.Parallel()

	// Opening the editor just after midnight anchors end at 00:00, which
	// leaves no room for any duration.
	clk := clock.Fixed(time.Date(2024, 3, 15, 0, 2, 0, 0, time.UTC))
	d := NewDraft(clk, "task-1", "emp-1", today, 60)
	assert.ErrorIs(t, d.Validate(), ErrInvalidRange)
}

func TestValidate_FutureTimeOnToday(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, today, 60)
	d.MoveEnd(15 * 60) // 15:00, but it is 14:00
	assert.ErrorIs(t, d.Validate(), ErrFutureTime)

	d.MoveEnd(840) // 14:00 exactly is allowed
	assert.NoError(t, d.Validate())
}

func TestValidate_PastDayPasses(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	assert.NoError(t, d.Validate())
}

func TestBeginSubmit_SingleInFlight(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	tok, cmd, err := d.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, "task-1", cmd.TaskID)

	_, _, err = d.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	// Resolving the in-flight submission unblocks the next attempt.
	assert.True(t, d.ResolveSubmit(tok))
	_, _, err = d.BeginSubmit()
	assert.NoError(t, err)
}

func TestResolveSubmit_DropsStaleResponses(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	tok, _, err := d.BeginSubmit()
	require.NoError(t, err)
	require.True(t, d.ResolveSubmit(tok))

	// The same token resolving twice (a late duplicate response) is
	// reported stale, as is a token from a previous submission.
	assert.False(t, d.ResolveSubmit(tok))

	tok2, _, err := d.BeginSubmit()
	require.NoError(t, err)
	assert.False(t, d.ResolveSubmit(tok))
	assert.True(t, d.ResolveSubmit(tok2))
}

func TestBeginSubmit_RejectsInvalidDraft(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, tomorrow, 60)
	_, _, err := d.BeginSubmit()
	assert.ErrorIs(t, err, ErrFutureDate)
}

func TestCommand_NaiveTimestamps(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 60)
	require.NoError(t, d.SetStartTime("09:00"))
	cmd := d.Command()
	assert.Equal(t, "2024-03-14T09:00:00", cmd.StartTimestamp)
	assert.Equal(t, "2024-03-14T10:00:00", cmd.EndTimestamp)
	assert.Equal(t, "emp-1", cmd.EmployeeID)
}

func TestCommand_DayEndRollsOver(t *testing.T) {
	t.Parallel()

	d := newTestDraft(t, yesterday, 90)
	d.MoveEnd(2000) // clamps to 1440
	cmd := d.Command()
	assert.Equal(t, "2024-03-14T22:30:00", cmd.StartTimestamp)
	assert.Equal(t, "2024-03-15T00:00:00", cmd.EndTimestamp)
}
