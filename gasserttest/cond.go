package gasserttest

import (
	"sync/atomic"
	"testing"

	"github.com/gordian-engine/gassert"
	"github.com/stretchr/testify/require"
)

// NeverCalled returns a condition that fails t if it is ever evaluated.
// Use it to prove that an elided assertion did not evaluate its condition.
func NeverCalled(t testing.TB) func() bool {
	return func() bool {
		t.Helper()
		t.Errorf("condition of an elided assertion was evaluated")
		return true
	}
}

// CountingCond returns a condition that always reports result,
// and a counter of how many times the condition was evaluated.
func CountingCond(result bool) (func() bool, *atomic.Int32) {
	var n atomic.Int32
	return func() bool {
		n.Add(1)
		return result
	}, &n
}

// RequireFatal calls fn and requires it to panic with an [*gassert.AssertionError],
// which it returns.
func RequireFatal(t testing.TB, fn func()) (err *gassert.AssertionError) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected a fatal assertion")

		var ok bool
		err, ok = r.(*gassert.AssertionError)
		require.Truef(t, ok, "expected panic with *gassert.AssertionError, got %T: %v", r, r)
	}()

	fn()
	return nil
}
