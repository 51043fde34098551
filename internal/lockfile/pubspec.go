package lockfile

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// Pubspec reads Dart pubspec.lock files.
type Pubspec struct{}

type pubspecLock struct {
	Packages map[string]pubspecPackage `yaml:"packages"`
}

type pubspecPackage struct {
	Version *string `yaml:"version"`
}

func (Pubspec) Name() string     { return "pubspec" }
func (Pubspec) FileName() string { return "pubspec.lock" }

func (p Pubspec) ExtractVersion(content string, library string) (Version, error) {
	var lock pubspecLock
	if err := yaml.Unmarshal([]byte(content), &lock); err != nil {
		return Version{}, &ParseError{Format: p.Name(), Err: err}
	}
	if lock.Packages == nil {
		return Version{}, &ParseError{Format: p.Name(), Err: errors.New("missing packages map")}
	}

	pkg, ok := lock.Packages[library]
	if !ok || pkg.Version == nil {
		return Version{}, nil
	}
	return Pinned(*pkg.Version), nil
}
