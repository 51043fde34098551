package lockfile

import (
	"errors"

	"github.com/BurntSushi/toml"
)

// Cargo reads Cargo.lock files.
type Cargo struct{}

type cargoLock struct {
	Package []namedPackage `toml:"package"`
}

func (Cargo) Name() string     { return "cargo" }
func (Cargo) FileName() string { return "Cargo.lock" }

func (c Cargo) ExtractVersion(content string, library string) (Version, error) {
	var lock cargoLock
	meta, err := toml.Decode(content, &lock)
	if err != nil {
		return Version{}, &ParseError{Format: c.Name(), Err: err}
	}
	if !meta.IsDefined("package") {
		return Version{}, &ParseError{Format: c.Name(), Err: errors.New("missing package list")}
	}

	v, _, err := findInList(c.Name(), "package", lock.Package, library)
	return v, err
}
