// Package tkdflog provides TigerKDF's garlic-level progress logging. It is
// deliberately called only at per-level granularity (never inside the
// per-block hot loop, which must stay allocation-free) and is grounded on
// distribution-distribution's pervasive use of sirupsen/logrus for
// structured, field-based logging throughout its registry packages.
package tkdflog

import (
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLevel sets the level of the garlic-level progress log. The progress
// entries are logged at Debug, so any level above Debug silences them.
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

// LevelStart logs the start of a garlic level.
func LevelStart(level, blocksPerThread int) {
	log.WithFields(logrus.Fields{
		"level":           level,
		"blocksPerThread": blocksPerThread,
	}).Debug("tigerkdf: starting garlic level")
}

// LevelDone logs the completion of a garlic level and its wall-clock cost.
func LevelDone(level int, elapsed time.Duration) {
	log.WithFields(logrus.Fields{
		"level":     level,
		"elapsedMs": elapsed.Milliseconds(),
	}).Debug("tigerkdf: garlic level complete")
}
