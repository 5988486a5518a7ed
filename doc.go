// Package gassert (Gordian assert) provides leveled assertions
// whose presence in a binary is decided at build time.
//
// It is assumed to be prohibitively expensive to validate every invariant
// at every function entrypoint in production.
// But, if unexpected behavior is observed, rebuilding with more invariant checks
// may immediately reveal the problem.
// gassert lets those checks live in the code permanently:
// a level that is not compiled in costs nothing,
// because its condition is never evaluated and its code is never emitted.
//
// There are four ordered levels, [LevelTrace] < [LevelDebug] < [LevelInfo] < [LevelWarn],
// plus the unconditional [LevelAlways].
// Each has an assertion function: [Trace], [Debug], [Info], [Warn], and [Always].
// Conditions are passed as closures, so they are evaluated lazily:
//
//	gassert.Debug(func() bool { return h.Len() == len(h.index) }, "heap and index disagree")
//
// The threshold is chosen with exactly one build tag:
//   - gassert_trace compiles in every level.
//   - gassert_debug compiles in Debug and above.
//   - gassert_info compiles in Info and above.
//   - gassert_warn compiles in Warn and above.
//   - With no threshold tag, the threshold is Warn.
//
// Assertions below the threshold are elided.
// Assertions at or above the threshold log a failure to [Logger] and continue,
// unless they are at or above the fatal floor, in which case they log and then panic
// with an [*AssertionError].
// The fatal floor defaults to [LevelAlways], so only [Always] panics.
// It can be lowered with one of gassert_fatal_debug, gassert_fatal_info, or gassert_fatal_warn,
// and it must stay above the threshold.
//
// Conflicting tags, such as gassert_debug together with gassert_info,
// or a fatal floor that is not above the threshold, fail to compile.
// Unknown tags are silently ignored by the go tool,
// so builds that set tags from scripts should validate them first
// with the gassertconfig package or the gassert command's check-tags subcommand.
//
// The gates [TraceEnabled], [DebugEnabled], [InfoEnabled], and [WarnEnabled] are constants.
// Wrapping a call site in an if statement on a gate
// also removes the evaluation of the message arguments.
//
// The default test run covers the no-tag build.
// Other configurations are covered by building the tests with their tags,
// for example "go test -tags gassert_info", which the package tests also do
// when a go command is available.
//
// Larger invariant helpers can be placed in a file constrained to the builds that need them,
// for example with "//go:build gassert_trace || gassert_debug",
// and paired with a no-op counterpart generated by the generate-nodebug command:
//
//	//go:generate go run github.com/gordian-engine/gassert/cmd/generate-nodebug invariants_debug.go
package gassert
