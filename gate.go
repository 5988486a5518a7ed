package gassert

// Policy is what a build does with an assertion site of a given level.
type Policy uint8

// Emission policies.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type Policy -trimprefix=Policy
const (
	// PolicyUnspecified is the zero value for Policy.
	// Resolve only returns it for invalid input.
	PolicyUnspecified Policy = iota

	// PolicyElided means the site is compiled out
	// and its condition is never evaluated.
	PolicyElided

	// PolicyNonFatal means the condition is evaluated once,
	// and a failure is logged before execution continues.
	PolicyNonFatal

	// PolicyFatal means the condition is evaluated once,
	// and a failure is logged and then panics.
	PolicyFatal
)

// Build configuration checks.
// Each expression overflows Level, a compile error,
// when the tag-selected constants are incoherent.
// For example, building with gassert_info and gassert_fatal_debug
// fails here because the fatal floor must be above the threshold.
const (
	_ = Threshold - LevelTrace
	_ = LevelWarn - Threshold
	_ = FatalFloor - Threshold - 1
	_ = LevelAlways - FatalFloor
)

// Per-level gates for this build.
//
// A call site that must not pay for evaluating its message arguments
// can be wrapped in the gate directly:
//
//	if gassert.TraceEnabled {
//		gassert.Trace(func() bool { return tree.Balanced() }, "unbalanced after insert of %v", expensiveDump(k))
//	}
//
// The gates are constants, so the compiler drops the whole block when a gate is false.
const (
	TraceEnabled = LevelTrace >= Threshold
	DebugEnabled = LevelDebug >= Threshold
	InfoEnabled  = LevelInfo >= Threshold
	WarnEnabled  = LevelWarn >= Threshold
)

const (
	traceFatal  = LevelTrace >= FatalFloor
	debugFatal  = LevelDebug >= FatalFloor
	infoFatal   = LevelInfo >= FatalFloor
	warnFatal   = LevelWarn >= FatalFloor
	alwaysFatal = LevelAlways >= FatalFloor
)

// Resolve reports the policy for an assertion of the given severity
// in a build with the given threshold and fatal floor.
//
// Resolve is pure. It returns PolicyUnspecified if severity is not a valid level,
// if threshold is not a valid threshold,
// or if fatalFloor is not strictly above threshold and at most LevelAlways.
func Resolve(severity, threshold, fatalFloor Level) Policy {
	if !severity.Valid() || !threshold.ValidThreshold() {
		return PolicyUnspecified
	}
	if fatalFloor <= threshold || fatalFloor > LevelAlways {
		return PolicyUnspecified
	}

	if severity < threshold {
		// LevelAlways is above every valid threshold,
		// so it never reaches this branch.
		return PolicyElided
	}

	if severity >= fatalFloor {
		return PolicyFatal
	}

	return PolicyNonFatal
}

// BuildPolicy resolves severity against the constants of the current build.
func BuildPolicy(severity Level) Policy {
	return Resolve(severity, Threshold, FatalFloor)
}
