package worldview

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and counts.
// Only populated when the pipeline is in debug mode.
type frameStats struct {
	filterTime  time.Duration
	composeTime time.Duration
	animateTime time.Duration
	total       int
	ground      int
	standing    int
	rejected    int
	tracked     int
}

// debugLog prints timing and count stats to stderr.
func (p *Pipeline) debugLog(stats frameStats) {
	if !p.debug {
		return
	}
	sum := stats.filterTime + stats.composeTime + stats.animateTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[worldview] filter: %v | compose: %v | animate: %v | total: %v\n",
		stats.filterTime, stats.composeTime, stats.animateTime, sum)
	_, _ = fmt.Fprintf(os.Stderr,
		"[worldview] entities: %d | ground: %d | standing: %d | rejected: %d | tracked players: %d\n",
		stats.total, stats.ground, stats.standing, stats.rejected, stats.tracked)
}
