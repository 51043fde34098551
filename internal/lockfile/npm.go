package lockfile

import (
	"encoding/json"
	"errors"
)

// npmModulePrefix namespaces package keys in the lockfileVersion 2+ "packages" map.
const npmModulePrefix = "node_modules/"

// NPM reads package-lock.json files.
type NPM struct{}

type npmLock struct {
	Packages     map[string]npmPackage `json:"packages"`
	Dependencies map[string]npmPackage `json:"dependencies"`
}

type npmPackage struct {
	Version *string `json:"version"`
}

func (NPM) Name() string     { return "npm" }
func (NPM) FileName() string { return "package-lock.json" }

// ExtractVersion reads "packages" keyed by "node_modules/<library>". Lock files
// written before lockfileVersion 2 only carry "dependencies" keyed by bare name.
func (n NPM) ExtractVersion(content string, library string) (Version, error) {
	var lock npmLock
	if err := json.Unmarshal([]byte(content), &lock); err != nil {
		return Version{}, &ParseError{Format: n.Name(), Err: err}
	}

	var (
		pkg npmPackage
		ok  bool
	)
	switch {
	case lock.Packages != nil:
		pkg, ok = lock.Packages[npmModulePrefix+library]
	case lock.Dependencies != nil:
		pkg, ok = lock.Dependencies[library]
	default:
		return Version{}, &ParseError{Format: n.Name(), Err: errors.New("missing packages map")}
	}

	if !ok || pkg.Version == nil {
		return Version{}, nil
	}
	return Pinned(*pkg.Version), nil
}
