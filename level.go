package gassert

// Level is the severity of an assertion site.
//
// Levels are totally ordered by their numeric value.
// New levels may only be appended between LevelWarn and LevelAlways
// by renumbering LevelAlways; the relative order of existing levels never changes.
type Level uint8

// Assertion levels, cheapest-to-skip first.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type Level -trimprefix=Level
const (
	// LevelUnspecified is the zero value for Level.
	// Using it for an assertion or a threshold is a bug.
	LevelUnspecified Level = iota

	// LevelTrace is for checks that may be arbitrarily expensive,
	// such as re-verifying an entire data structure on every mutation.
	// Trace checks are the first to be elided.
	LevelTrace

	// LevelDebug is for checks that are too expensive for production
	// but useful in a developer build.
	LevelDebug

	// LevelInfo is for moderately cheap checks.
	LevelInfo

	// LevelWarn is for cheap checks that are worth keeping in most builds.
	// It is the highest valid threshold.
	LevelWarn

	// LevelAlways is the distinguished unconditional level.
	// It is never elided and is never a valid threshold.
	LevelAlways
)

// Valid reports whether l is one of the named severities,
// including LevelAlways.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelAlways
}

// ValidThreshold reports whether l may be used as a build threshold.
func (l Level) ValidThreshold() bool {
	return l >= LevelTrace && l <= LevelWarn
}

// Levels returns every valid severity in ascending order.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelAlways}
}

// ThresholdLevels returns the severities that may be selected as a threshold,
// in ascending order.
func ThresholdLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn}
}
