package gassert

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrAssertionFailed is the sentinel wrapped by every [*AssertionError],
// so that callers recovering a fatal assertion can use [errors.Is].
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError describes a failed assertion site.
type AssertionError struct {
	Level   Level
	Message string

	// Location of the assertion call.
	// File is empty if the runtime could not report the caller.
	File string
	Line int
	Func string
}

func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}

	if e.File == "" {
		return fmt.Sprintf("%s assertion failed: %s", e.Level, e.Message)
	}
	return fmt.Sprintf("%s assertion failed at %s:%d: %s", e.Level, e.File, e.Line, e.Message)
}

// Unwrap returns [ErrAssertionFailed].
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// LogValue renders e as a group, so that log handlers
// can index the failing site without parsing the message.
func (e *AssertionError) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue(ErrAssertionFailed.Error())
	}

	attrs := []slog.Attr{
		slog.String("level", e.Level.String()),
		slog.String("msg", e.Message),
	}
	if e.File != "" {
		attrs = append(attrs,
			slog.String("file", e.File),
			slog.Int("line", e.Line),
			slog.String("func", e.Func),
		)
	}
	return slog.GroupValue(attrs...)
}

// newAssertionError builds the failure for the site skip frames above the caller.
func newAssertionError(lvl Level, skip int, format string, args []any) *AssertionError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	e := &AssertionError{
		Level:   lvl,
		Message: msg,
	}

	// The +1 accounts for newAssertionError itself.
	pc, file, line, ok := runtime.Caller(skip + 1)
	if ok {
		e.File = file
		e.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.Func = fn.Name()
		}
	}

	return e
}
