package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SidecarFileName is the fixed name of the tool-authored metadata file
// written next to an installed addon's content.
const SidecarFileName = ".addonscan.json"

// ScanSidecar reads the sidecar metadata file at the root of one folder.
// Most third-party folders carry no sidecar; that is the (nil, nil) case,
// not an error. A sidecar that is present but malformed is an ErrParse;
// the folder itself being missing is an ErrNotFound.
func ScanSidecar(fsys afero.Fs, path string) (*SidecarScan, error) {
	if info, err := fsys.Stat(path); err != nil || !info.IsDir() {
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := afero.ReadFile(fsys, filepath.Join(path, SidecarFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sidecar in %s: %w", path, err)
	}

	var meta SidecarMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if meta.Name == "" {
		return nil, fmt.Errorf("%w: %s: sidecar has no name", ErrParse, path)
	}

	return &SidecarScan{Path: path, Meta: meta}, nil
}
