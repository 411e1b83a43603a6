package buildctx

import "testing"

func TestTimerAccumulatesAcrossCalls(t *testing.T) {
	ctx := New(true)
	ctx.Time(TimerSampleTerrain, func() {})
	ctx.Time(TimerSampleTerrain, func() {})

	if ctx.AccumulatedTime(TimerSampleTerrain) < 0 {
		t.Error("accumulated time should never be negative")
	}
}

func TestTimerDisabledReturnsZero(t *testing.T) {
	ctx := New(false)
	ctx.Time(TimerSampleTerrain, func() {})

	if got := ctx.AccumulatedTime(TimerSampleTerrain); got != 0 {
		t.Errorf("disabled timer accumulated = %v, want 0", got)
	}
}

func TestLogDisabledRecordsNothing(t *testing.T) {
	ctx := New(false)
	ctx.Progressf("should not be recorded")

	if len(ctx.LogText()) != 0 {
		t.Errorf("log has %d entries, want 0 with logging disabled", len(ctx.LogText()))
	}
}

func TestLogEnabledRecordsWithCategoryPrefix(t *testing.T) {
	ctx := New(true)
	ctx.Warningf("low clearance at row %d", 3)

	text := ctx.LogText()
	if len(text) != 1 {
		t.Fatalf("log has %d entries, want 1", len(text))
	}
	if text[0] != "WARN low clearance at row 3" {
		t.Errorf("log entry = %q, want %q", text[0], "WARN low clearance at row 3")
	}
}

func TestResetLogClearsEntries(t *testing.T) {
	ctx := New(true)
	ctx.Progressf("one")
	ctx.Progressf("two")
	ctx.ResetLog()

	if len(ctx.LogText()) != 0 {
		t.Errorf("log has %d entries after reset, want 0", len(ctx.LogText()))
	}
}
