package gassertconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gordian-engine/gassert"
)

// Sentinel errors, wrapped by the errors returned from this package.
var (
	ErrUnknownLevel    = errors.New("unknown assertion level")
	ErrUnknownTag      = errors.New("unknown gassert build tag")
	ErrConflictingTags = errors.New("conflicting gassert build tags")
	ErrInvalidConfig   = errors.New("invalid gassert configuration")
)

// TagPrefix is the prefix shared by every gassert build tag.
const TagPrefix = "gassert_"

const fatalTagPrefix = TagPrefix + "fatal_"

// Config is the pair of values that build tags select for the gassert package.
type Config struct {
	Threshold  gassert.Level
	FatalFloor gassert.Level
}

// Default returns the configuration of a build without any gassert tags.
func Default() Config {
	return Config{
		Threshold:  gassert.LevelWarn,
		FatalFloor: gassert.LevelAlways,
	}
}

// Current returns the configuration the running binary was built with.
func Current() Config {
	return Config{
		Threshold:  gassert.Threshold,
		FatalFloor: gassert.FatalFloor,
	}
}

// Validate reports whether c describes a build that compiles.
func (c Config) Validate() error {
	if !c.Threshold.ValidThreshold() {
		return fmt.Errorf("%w: threshold %s is not one of Trace, Debug, Info, or Warn", ErrInvalidConfig, c.Threshold)
	}
	if !c.FatalFloor.Valid() {
		return fmt.Errorf("%w: fatal floor %s is not a valid level", ErrInvalidConfig, c.FatalFloor)
	}
	if c.FatalFloor <= c.Threshold {
		return fmt.Errorf(
			"%w: fatal floor %s must be above threshold %s",
			ErrInvalidConfig, c.FatalFloor, c.Threshold,
		)
	}
	return nil
}

// Resolve reports the policy an assertion of the given severity
// would have in a build configured by c.
func (c Config) Resolve(severity gassert.Level) gassert.Policy {
	return gassert.Resolve(severity, c.Threshold, c.FatalFloor)
}

// Tags returns the minimal build tags that select c.
// Values equal to the defaults are omitted,
// so the default configuration has no tags.
// An invalid configuration has no tags that select it, so Tags returns nil.
func (c Config) Tags() []string {
	if c.Validate() != nil {
		return nil
	}

	var tags []string
	d := Default()
	if c.Threshold != d.Threshold {
		tags = append(tags, ThresholdTag(c.Threshold))
	}
	if c.FatalFloor != d.FatalFloor {
		tags = append(tags, FatalTag(c.FatalFloor))
	}

	gassert.Trace(func() bool {
		rt, err := FromTags(strings.Join(tags, ","))
		return err == nil && rt == c
	}, "tags %v do not select %s", tags, c)

	return tags
}

// TagString returns the tags of c joined with commas,
// suitable for the -tags flag of the go tool.
func (c Config) TagString() string {
	return strings.Join(c.Tags(), ",")
}

func (c Config) String() string {
	return fmt.Sprintf("threshold=%s fatal=%s", c.Threshold, c.FatalFloor)
}

// ThresholdTag returns the build tag selecting lvl as the threshold.
func ThresholdTag(lvl gassert.Level) string {
	return TagPrefix + strings.ToLower(lvl.String())
}

// FatalTag returns the build tag selecting lvl as the fatal floor.
func FatalTag(lvl gassert.Level) string {
	return fatalTagPrefix + strings.ToLower(lvl.String())
}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (gassert.Level, error) {
	name := strings.TrimSpace(s)
	for _, l := range gassert.Levels() {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return gassert.LevelUnspecified, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
