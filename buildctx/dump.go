package buildctx

import "time"

func logLine(ctx *Context, label TimerLabel, name string, pc float64) {
	t := ctx.AccumulatedTime(label)
	if t == 0 {
		return
	}
	ctx.Progressf("%s:\t%.2fms\t(%.1f%%)", name, float64(t)/float64(time.Millisecond), float64(t)*pc)
}

// LogBuildTimes writes a breakdown of every pipeline stage's
// accumulated time, as a percentage of totalTime, to ctx's log.
func LogBuildTimes(ctx *Context, totalTime time.Duration) {
	pc := 100.0 / float64(totalTime)
	ctx.Progressf("Build Times")
	logLine(ctx, TimerSampleTerrain, "- Sample Terrain\t", pc)
	logLine(ctx, TimerSampleTool, "- Sample Tool\t\t", pc)
	logLine(ctx, TimerBuildTerrainMap, "- Build Terrain Map\t", pc)
	logLine(ctx, TimerBuildToolMap, "- Build Tool Map\t", pc)
	logLine(ctx, TimerSparsifyTool, "- Sparsify Tool\t\t", pc)
	logLine(ctx, TimerGenerateToolpath, "- Generate Toolpath\t", pc)
	ctx.Progressf("=== TOTAL:\t%v", totalTime)
}
