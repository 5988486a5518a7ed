package gassert

// Each assertion function is a constant gate followed by a single call,
// which keeps it within the inlining budget.
// Once inlined into an elided call site, the condition closure is unreachable
// and the compiler removes it.

// Trace asserts that cond reports true, if Trace assertions are compiled into this build.
//
// cond is not called when Trace assertions are elided.
// Otherwise it is called exactly once.
// The message is format, or fmt.Sprintf(format, args...) if any args are given.
// The args are ordinary arguments and are evaluated even in an elided build;
// wrap the call in if [TraceEnabled] when computing them is expensive.
func Trace(cond func() bool, format string, args ...any) {
	if !TraceEnabled {
		return
	}
	check(LevelTrace, traceFatal, cond, format, args)
}

// Debug asserts that cond reports true, if Debug assertions are compiled into this build.
// See [Trace] for evaluation rules.
func Debug(cond func() bool, format string, args ...any) {
	if !DebugEnabled {
		return
	}
	check(LevelDebug, debugFatal, cond, format, args)
}

// Info asserts that cond reports true, if Info assertions are compiled into this build.
// See [Trace] for evaluation rules.
func Info(cond func() bool, format string, args ...any) {
	if !InfoEnabled {
		return
	}
	check(LevelInfo, infoFatal, cond, format, args)
}

// Warn asserts that cond reports true, if Warn assertions are compiled into this build.
// See [Trace] for evaluation rules.
func Warn(cond func() bool, format string, args ...any) {
	if !WarnEnabled {
		return
	}
	check(LevelWarn, warnFatal, cond, format, args)
}

// Always asserts that cond reports true in every build.
// cond is called exactly once, and a failure panics with an [*AssertionError].
func Always(cond func() bool, format string, args ...any) {
	check(LevelAlways, alwaysFatal, cond, format, args)
}

// check evaluates cond once and handles a failure according to fatal.
// It must only be called directly from the exported assertion functions,
// so that the reported caller is the assertion site.
func check(lvl Level, fatal bool, cond func() bool, format string, args []any) {
	if cond() {
		return
	}

	// Skip check and the exported assertion function.
	err := newAssertionError(lvl, 2, format, args)

	if !fatal {
		Logger().Warn("Assertion failure", "assertion", err)
		return
	}

	Logger().Error("Assertion failure", "assertion", err)
	panic(err)
}
