package lockfile

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a file name maps to no supported lock format.
var ErrUnknownFormat = errors.New("unsupported lock file format")

// Version is a resolved package version as recorded in a lock file.
// The zero value means the package is not present.
type Version struct {
	Number  string
	Present bool
}

// Pinned returns a present version.
func Pinned(number string) Version {
	return Version{Number: number, Present: true}
}

// String returns the version number, or "(none)" when absent.
func (v Version) String() string {
	if !v.Present {
		return "(none)"
	}
	return v.Number
}

// Format parses one package manager's lock file.
type Format interface {
	// Name returns a short identifier, e.g. "composer".
	Name() string
	// FileName returns the exact lock file name this format is recognised by.
	FileName() string
	// ExtractVersion returns the version of library recorded in content.
	// A library missing from a well-formed file yields the zero Version and no error.
	ExtractVersion(content string, library string) (Version, error)
}

// ParseError reports lock file content that could not be parsed.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s lock file: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var formats = []Format{
	Composer{},
	Cargo{},
	NPM{},
	Pubspec{},
}

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Guess returns the format whose lock file name equals fileName.
// Matching is exact and case-sensitive.
func Guess(fileName string) (Format, bool) {
	for _, f := range formats {
		if f.FileName() == fileName {
			return f, true
		}
	}
	return nil, false
}

// ForFile is like Guess but returns ErrUnknownFormat when nothing matches.
func ForFile(fileName string) (Format, error) {
	f, ok := Guess(fileName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, fileName)
	}
	return f, nil
}

// namedPackage is a list-style lock record with required name and version.
type namedPackage struct {
	Name    *string `json:"name" toml:"name"`
	Version *string `json:"version" toml:"version"`
}

// findInList validates every record and returns the version of the first
// record named library.
func findInList(format string, section string, packages []namedPackage, library string) (Version, bool, error) {
	var found Version
	matched := false
	for i, p := range packages {
		if p.Name == nil {
			return Version{}, false, &ParseError{Format: format, Err: fmt.Errorf("%s[%d]: missing name", section, i)}
		}
		if p.Version == nil {
			return Version{}, false, &ParseError{Format: format, Err: fmt.Errorf("%s[%d] %q: missing version", section, i, *p.Name)}
		}
		if !matched && *p.Name == library {
			found = Pinned(*p.Version)
			matched = true
		}
	}
	return found, matched, nil
}
