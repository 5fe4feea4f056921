package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 16, hour, min, 0, 0, time.UTC)
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		kind    SessionKind
		start   ClockTime
		end     ClockTime
		late    ClockTime
		maxHrs  float64
		wantErr error
	}{
		{SessionMorning, ClockTime{8, 0}, ClockTime{12, 0}, ClockTime{8, 1}, 4, nil},
		{SessionAfternoon, ClockTime{13, 0}, ClockTime{17, 0}, ClockTime{13, 1}, 4, nil},
		{SessionWhole, ClockTime{8, 0}, ClockTime{17, 0}, ClockTime{8, 1}, 8, nil},
		{SessionKind("evening"), ClockTime{}, ClockTime{}, ClockTime{}, 0, ErrInvalidSessionKind},
		{SessionKind(""), ClockTime{}, ClockTime{}, ClockTime{}, 0, ErrInvalidSessionKind},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			w, err := ResolveWindow(tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
			assert.Equal(t, tt.late, w.LateThreshold)
			assert.Equal(t, tt.maxHrs, w.MaxHours)
			assert.Equal(t, float64(1), w.BreakHours)
		})
	}
}

func TestWindowContains(t *testing.T) {
	morning, err := ResolveWindow(SessionMorning)
	require.NoError(t, err)

	assert.True(t, morning.Contains(at(8, 0)), "window start is inclusive")
	assert.True(t, morning.Contains(at(11, 59)))
	assert.False(t, morning.Contains(at(12, 0)), "window end is exclusive")
	assert.False(t, morning.Contains(at(7, 59)))

	whole, err := ResolveWindow(SessionWhole)
	require.NoError(t, err)
	assert.True(t, whole.Contains(at(16, 59)))
	assert.False(t, whole.Contains(at(17, 0)))
}

func TestWindowLateFor(t *testing.T) {
	morning, _ := ResolveWindow(SessionMorning)
	afternoon, _ := ResolveWindow(SessionAfternoon)

	tests := []struct {
		name string
		w    Window
		in   time.Time
		want int
	}{
		{"on the dot", morning, at(8, 0), 0},
		{"at threshold", morning, at(8, 1), 0},
		{"one minute late", morning, at(8, 2), 1},
		{"an hour late", morning, at(9, 1), 60},
		{"afternoon on time", afternoon, at(13, 0), 0},
		{"afternoon late", afternoon, at(13, 15), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.LateFor(tt.in))
		})
	}
}

func TestWindowEarlyTimeout(t *testing.T) {
	morning, _ := ResolveWindow(SessionMorning)

	assert.True(t, morning.EarlyTimeout(at(11, 0)), "an hour early")
	assert.False(t, morning.EarlyTimeout(at(11, 30)), "exactly at the leeway")
	assert.False(t, morning.EarlyTimeout(at(11, 45)))
	assert.False(t, morning.EarlyTimeout(at(12, 10)), "past the end")
}

func TestComputeHours(t *testing.T) {
	morning, _ := ResolveWindow(SessionMorning)
	whole, _ := ResolveWindow(SessionWhole)

	tests := []struct {
		name         string
		w            Window
		in, out      time.Time
		wantRendered float64
		wantOvertime float64
	}{
		{"whole day with overtime", whole, at(8, 0), at(17, 30), 8.5, 0.5},
		{"whole day exact", whole, at(8, 0), at(17, 0), 8, 0},
		{"morning two hours", morning, at(8, 5), at(10, 5), 2, 0},
		{"morning full, no break", morning, at(8, 0), at(12, 0), 4, 0},
		{"break kicks in past four hours", morning, at(8, 0), at(12, 30), 3.5, 0},
		{"rounding", morning, at(8, 0), at(10, 20), 2.33, 0},
		{"zero span", morning, at(9, 0), at(9, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.in, tt.out, tt.w)
			assert.InDelta(t, tt.wantRendered, got.Rendered, 1e-9)
			assert.InDelta(t, tt.wantOvertime, got.Overtime, 1e-9)
		})
	}
}

func TestCounted(t *testing.T) {
	rendered := 4.0

	base := Attendance{Status: StatusApproved, RenderedHours: &rendered}
	assert.True(t, base.Counted())
	assert.Equal(t, 4.0, base.CountedHours())

	pending := base
	pending.Status = StatusPending
	assert.False(t, pending.Counted())

	absent := base
	absent.IsAbsent = true
	assert.False(t, absent.Counted())

	deleted := base
	deleted.IsDeleted = true
	assert.False(t, deleted.Counted())
	assert.Equal(t, 0.0, deleted.CountedHours())

	open := base
	open.RenderedHours = nil
	assert.False(t, open.Counted())
}
