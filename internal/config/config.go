// Package config holds the validated, read-only parameters of a directory walk.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrInvalidPath is returned when the root path does not exist or is not a directory.
var ErrInvalidPath = errors.New("invalid path")

// Options are the raw, unvalidated traversal parameters as parsed from the command line.
type Options struct {
	// Path is the root directory to walk.
	Path string
	// Recursive enables descent into subdirectories.
	Recursive bool
	// Depth is the maximum descent depth.
	Depth Depth
	// Quiet suppresses per-entry display events.
	Quiet bool
	// IgnoreExtensions lists extensions to skip.
	IgnoreExtensions []string
	// OnlyExtensions lists the only extensions to count. Overrides IgnoreExtensions.
	OnlyExtensions []string
	// HumanUnit selects human-readable size formatting.
	HumanUnit bool
}

// Config is the immutable traversal configuration.
// It is shared by pointer across the whole walk and never modified after New.
type Config struct {
	root      string
	recursive bool
	depth     Depth
	quiet     bool
	ignore    ExtensionSet
	only      ExtensionSet
	humanUnit bool
}

// New validates opts against fsys and returns the resulting configuration.
// It fails with an error wrapping ErrInvalidPath if the path is missing or not a directory.
func New(fsys afero.Fs, opts Options) (*Config, error) {
	info, err := fsys.Stat(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: accessing %q: %w", ErrInvalidPath, opts.Path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidPath, opts.Path)
	}

	return &Config{
		root:      opts.Path,
		recursive: opts.Recursive,
		depth:     opts.Depth,
		quiet:     opts.Quiet,
		ignore:    NewExtensionSet(opts.IgnoreExtensions...),
		only:      NewExtensionSet(opts.OnlyExtensions...),
		humanUnit: opts.HumanUnit,
	}, nil
}

// Root returns the directory the walk starts from.
func (c *Config) Root() string { return c.root }

// Recursive reports whether subdirectories are descended into.
func (c *Config) Recursive() bool { return c.recursive }

// Depth returns the maximum descent depth.
func (c *Config) Depth() Depth { return c.depth }

// Quiet reports whether per-entry display events are suppressed.
func (c *Config) Quiet() bool { return c.quiet }

// IgnoreExtensions returns the normalized set of extensions to skip.
func (c *Config) IgnoreExtensions() ExtensionSet { return c.ignore }

// OnlyExtensions returns the normalized set of extensions to exclusively count.
func (c *Config) OnlyExtensions() ExtensionSet { return c.only }

// HumanUnit reports whether sizes are rendered in human-readable units.
func (c *Config) HumanUnit() bool { return c.humanUnit }

// ExtensionSet is a set of lowercase file extensions without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet normalizes exts into a set.
// Quotes and whitespace are trimmed, one leading dot is stripped and the result is lowercased.
// Values that end up empty are dropped.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))

	for _, ext := range exts {
		ext = strings.Trim(strings.TrimSpace(ext), `'"`)
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))

		if ext == "" {
			continue
		}

		set[ext] = struct{}{}
	}

	return set
}

// Contains reports whether ext, compared case-insensitively, is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[strings.ToLower(ext)]

	return ok
}

// Empty reports whether the set has no members.
func (s ExtensionSet) Empty() bool { return len(s) == 0 }
