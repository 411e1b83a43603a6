// Package buildctx provides logging and performance-timer tracking for
// the mesh-to-toolpath pipeline, independent of any particular stage.
// A Context is passed through every build operation; callers that don't
// care about logging or timing just construct one with state=false.
package buildctx

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel identifies one pipeline stage's accumulated timer.
type TimerLabel int

const (
	TimerSampleTerrain TimerLabel = iota
	TimerSampleTool
	TimerBuildTerrainMap
	TimerBuildToolMap
	TimerSparsifyTool
	TimerGenerateToolpath

	numTimers
)

const maxMessages = 1000

// Context accumulates log messages and per-stage timers across one
// session's build. Logging and timing are each independently toggled;
// disabling either turns its operations into no-ops rather than
// removing the API surface, so callers never need to guard calls.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	startTime [numTimers]time.Time
	accTime   [numTimers]time.Duration

	messages    []string
	numMessages int
}

// New returns a Context with logging and timers both enabled or
// disabled according to state.
func New(state bool) *Context {
	return &Context{
		logEnabled:   state,
		timerEnabled: state,
		messages:     make([]string, 0, maxMessages),
	}
}

// EnableLog toggles logging independently of timers.
func (ctx *Context) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer toggles timers independently of logging.
func (ctx *Context) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all accumulated log entries.
func (ctx *Context) ResetLog() {
	ctx.numMessages = 0
	ctx.messages = ctx.messages[:0]
}

// ResetTimers zeroes every timer's accumulated duration.
func (ctx *Context) ResetTimers() {
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

// Log records a formatted message under category, if logging is enabled.
func (ctx *Context) Log(category LogCategory, format string, v ...interface{}) {
	if !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages = append(ctx.messages, prefix+fmt.Sprintf(format, v...))
	ctx.numMessages++
}

func (ctx *Context) Progressf(format string, v ...interface{}) { ctx.Log(LogProgress, format, v...) }
func (ctx *Context) Warningf(format string, v ...interface{})  { ctx.Log(LogWarning, format, v...) }
func (ctx *Context) Errorf(format string, v ...interface{})    { ctx.Log(LogError, format, v...) }

// LogText returns the logged messages, oldest first.
func (ctx *Context) LogText() []string {
	return ctx.messages
}

// StartTimer marks the start of the named stage, if timers are enabled.
func (ctx *Context) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer accumulates elapsed time since the matching StartTimer call.
func (ctx *Context) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// Time runs fn with label's timer started, stopping it on return
// (including on panic). Matches the start/defer-stop pattern used
// throughout this pipeline's build stages.
func (ctx *Context) Time(label TimerLabel, fn func()) {
	ctx.StartTimer(label)
	defer ctx.StopTimer(label)
	fn()
}

// AccumulatedTime returns label's total accumulated duration, or 0 if
// timers are disabled or the timer was never started.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
