package gassertconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/gordian-engine/gassert"
)

// FromTags parses a build tag list, as passed to the -tags flag of the go tool,
// into a Config.
// Tags may be separated by commas or whitespace.
//
// Tags without the gassert_ prefix are ignored.
// A gassert_ tag that the gassert package does not define is an error wrapping [ErrUnknownTag],
// and selecting two different thresholds or two different fatal floors
// is an error wrapping [ErrConflictingTags].
// The resulting Config is validated before it is returned.
func FromTags(in string) (Config, error) {
	var s tagSet
	for _, tag := range splitTags(in) {
		if err := s.add(tag); err != nil {
			return Config{}, err
		}
	}
	return s.config()
}

// ParseTagsFile parses build tags from r, one line at a time.
// Compared to [FromTags], ParseTagsFile allows for comments and blank lines,
// and it reports up to five errors at once, with their line numbers.
func ParseTagsFile(r io.Reader) (Config, error) {
	var s tagSet

	scanner := bufio.NewScanner(r)
	// Scanner buffer defaults to 64k.
	// A tag line should never be anywhere close to that.
	scanner.Buffer(make([]byte, 0, 512), 4096)
	lineIdx := 0
	nErrs := 0
	const errLimit = 5
	var errs error
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSpace(scanner.Text())

		// Blank or comment lines are allowed in parser.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, tag := range splitTags(line) {
			if err := s.add(tag); err != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineIdx, err))
				nErrs++
				if nErrs >= errLimit {
					errs = errors.Join(errs, fmt.Errorf("stopped parsing after %d errors", nErrs))
					return Config{}, errs
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("reading tags: %w", err))
	}

	if errs != nil {
		return Config{}, errs
	}

	return s.config()
}

func splitTags(in string) []string {
	return strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

//go:generate go run github.com/gordian-engine/gassert/cmd/generate-nodebug invariants_debug.go

// tagSet accumulates the gassert tags seen while parsing.
type tagSet struct {
	thresholdTag string
	fatalTag     string

	cfg Config
}

func (s *tagSet) add(tag string) error {
	if !strings.HasPrefix(tag, TagPrefix) {
		// Not ours.
		return nil
	}

	if name, ok := strings.CutPrefix(tag, fatalTagPrefix); ok {
		lvl, err := ParseLevel(name)
		if err != nil || FatalTag(lvl) != tag || !fatalTagLevel(lvl) {
			return fmt.Errorf("%w: %q (fatal tags are %s)", ErrUnknownTag, tag, strings.Join(FatalTags(), ", "))
		}
		if s.fatalTag != "" && s.fatalTag != tag {
			return fmt.Errorf("%w: %q and %q", ErrConflictingTags, s.fatalTag, tag)
		}
		s.fatalTag = tag
		s.cfg.FatalFloor = lvl
		invariantTagSet(s)
		return nil
	}

	lvl, err := ParseLevel(strings.TrimPrefix(tag, TagPrefix))
	if err != nil || ThresholdTag(lvl) != tag || !lvl.ValidThreshold() {
		return fmt.Errorf("%w: %q (threshold tags are %s)", ErrUnknownTag, tag, strings.Join(ThresholdTags(), ", "))
	}
	if s.thresholdTag != "" && s.thresholdTag != tag {
		return fmt.Errorf("%w: %q and %q", ErrConflictingTags, s.thresholdTag, tag)
	}
	s.thresholdTag = tag
	s.cfg.Threshold = lvl
	invariantTagSet(s)
	return nil
}

func (s *tagSet) config() (Config, error) {
	cfg := Default()
	if s.thresholdTag != "" {
		cfg.Threshold = s.cfg.Threshold
	}
	if s.fatalTag != "" {
		cfg.FatalFloor = s.cfg.FatalFloor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fatalTagLevel reports whether the gassert package declares a fatal tag for lvl.
// A fatal floor of Trace could never be above a threshold,
// and Always is the default.
func fatalTagLevel(lvl gassert.Level) bool {
	return lvl >= gassert.LevelDebug && lvl <= gassert.LevelWarn
}

// ThresholdTags returns every threshold build tag, lowest level first.
func ThresholdTags() []string {
	var out []string
	for _, l := range gassert.ThresholdLevels() {
		out = append(out, ThresholdTag(l))
	}
	return out
}

// FatalTags returns every fatal floor build tag, lowest level first.
func FatalTags() []string {
	var out []string
	for _, l := range gassert.Levels() {
		if fatalTagLevel(l) {
			out = append(out, FatalTag(l))
		}
	}
	return out
}
