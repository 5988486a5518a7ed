// Package gassertconfig describes gassert build configurations
// outside of the build itself.
//
// The gassert package fixes its threshold with build tags,
// and the go tool silently ignores tags it does not recognize.
// A misspelled tag such as gassert_dbug therefore produces a default build
// instead of a compile error.
// This package parses tag lists, tag files, and TOML configuration files
// into a [Config], rejecting unknown gassert tags and conflicting tags,
// so that build scripts can validate a configuration before invoking go build.
package gassertconfig
