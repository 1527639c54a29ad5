package bramble

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Game.debug is true.
type debugStats struct {
	compileTime  time.Duration
	submitTime   time.Duration
	branchCount  int
	commandCount int
	levelCount   int
	replantCount int
}

// debugLog prints timing and draw stats to stderr.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	total := stats.compileTime + stats.submitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[bramble] compile: %v | submit: %v | total: %v\n",
		stats.compileTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[bramble] branches: %d | commands: %d | level batches: %d | replants: %d\n",
		stats.branchCount, stats.commandCount, stats.levelCount, stats.replantCount)
}

// debugMaxBranchCount is the tree size past which growth configs get a
// stderr warning. Every branch costs two vector draws per frame.
const debugMaxBranchCount = 1 << 16

// debugCheckTreeSize warns on stderr if a growth config produces more
// branches than debugMaxBranchCount.
func debugCheckTreeSize(cfg Config) {
	total, atLevel := 0, 1
	for level := 1; level <= cfg.MaxDepth; level++ {
		total += atLevel
		if total > debugMaxBranchCount {
			_, _ = fmt.Fprintf(os.Stderr,
				"[bramble] warning: depth %d with branch factor %d grows over %d branches\n",
				cfg.MaxDepth, cfg.BranchFactor, debugMaxBranchCount)
			return
		}
		atLevel *= cfg.BranchFactor
	}
}

// countLevels counts contiguous groups of commands sharing a level. Since
// compilation emits strictly level by level, this is the number of level
// batches a frame submits.
func countLevels(commands []RenderCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := commands[0].Level
	for i := 1; i < len(commands); i++ {
		if commands[i].Level != prev {
			count++
			prev = commands[i].Level
		}
	}
	return count
}
