package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectKind classifies a path by its extension
func DetectKind(path string) TargetKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe":
		return KindExecutable
	case ".msi":
		return KindInstaller
	case ".bat", ".cmd":
		return KindBatch
	case ".zip":
		return KindArchive
	default:
		return KindUnknown
	}
}

// Validate checks a selected path and returns a populated Target.
// An empty path is refused with ErrNoTarget before anything else happens.
func Validate(path string) (Target, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Target{}, ErrNoTarget
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Target{}, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Target{}, fmt.Errorf("file does not exist: %s", absPath)
		}
		return Target{}, fmt.Errorf("cannot access %s: %w", absPath, err)
	}
	if info.IsDir() {
		return Target{}, fmt.Errorf("%w: %s", ErrNotAFile, absPath)
	}

	return Target{
		Path: absPath,
		Kind: DetectKind(absPath),
		Size: info.Size(),
	}, nil
}

// HasPEHeader reports whether the file starts with the DOS "MZ" magic.
// Every Windows PE executable (and MSI custom-action stubs) carries it;
// a missing header means the file will not run under Wine, but the check
// is advisory only - the UI warns instead of refusing.
func HasPEHeader(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	magic := make([]byte, 2)
	if _, err := f.Read(magic); err != nil {
		return false, err
	}

	return magic[0] == 'M' && magic[1] == 'Z', nil
}
