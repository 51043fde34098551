package lockfile

import (
	"encoding/json"
	"errors"
)

// Composer reads composer.lock files.
type Composer struct{}

type composerLock struct {
	Packages    *[]namedPackage `json:"packages"`
	PackagesDev []namedPackage  `json:"packages-dev"`
}

func (Composer) Name() string     { return "composer" }
func (Composer) FileName() string { return "composer.lock" }

// ExtractVersion looks in "packages" first, then "packages-dev".
func (c Composer) ExtractVersion(content string, library string) (Version, error) {
	var lock composerLock
	if err := json.Unmarshal([]byte(content), &lock); err != nil {
		return Version{}, &ParseError{Format: c.Name(), Err: err}
	}
	if lock.Packages == nil {
		return Version{}, &ParseError{Format: c.Name(), Err: errors.New("missing packages list")}
	}

	v, ok, err := findInList(c.Name(), "packages", *lock.Packages, library)
	if err != nil || ok {
		return v, err
	}
	v, _, err = findInList(c.Name(), "packages-dev", lock.PackagesDev, library)
	return v, err
}
