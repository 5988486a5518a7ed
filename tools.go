//go:build tools

// For the tools.go pattern, see:
// https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module

package gassert

import (
	// For stringer, used in the go:generate calls for Level and Policy.
	_ "golang.org/x/tools/cmd/stringer"
)
