//go:build gassert_trace || gassert_debug

package gassertconfig

import "github.com/gordian-engine/gassert"

// invariantTagSet asserts that every tag recorded in s
// renders back to the level recorded for it.
func invariantTagSet(s *tagSet) {
	gassert.Debug(func() bool {
		return s.thresholdTag == "" || s.thresholdTag == ThresholdTag(s.cfg.Threshold)
	}, "threshold tag %q recorded with level %s", s.thresholdTag, s.cfg.Threshold)

	gassert.Debug(func() bool {
		return s.fatalTag == "" || s.fatalTag == FatalTag(s.cfg.FatalFloor)
	}, "fatal tag %q recorded with level %s", s.fatalTag, s.cfg.FatalFloor)
}
