package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// fingerprintVariants are the alternate inclusion filters computed for
// every folder, beyond the primary all-files fingerprint. The catalog may
// have fingerprinted a published package under any of them, so the scanner
// reproduces each. Additions here are additive only.
var fingerprintVariants = []struct {
	name    string
	include func(relPath string) bool
}{
	{VariantNoLocalization, func(relPath string) bool { return !isLocalizationFile(relPath) }},
}

// ScanFolder fingerprints one addon folder: every content file is read,
// normalized and hashed, and the sorted file hashes are aggregated into the
// folder fingerprints. The descriptor is attached when present. An empty
// folder yields the fixed empty-set fingerprint, not an error; a content
// file that exists but cannot be read fails the whole folder, since a
// missing file would silently change the fingerprint.
func ScanFolder(fsys afero.Fs, path string) (*FolderScan, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, path)
	}

	relPaths, err := walkContentFiles(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", path, err)
	}

	files := make([]FileFingerprint, 0, len(relPaths))
	for _, rel := range relPaths {
		data, err := afero.ReadFile(fsys, filepath.Join(path, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", rel, err)
		}
		normalized := Normalize(data, filepath.Ext(rel))
		files = append(files, FileFingerprint{Path: rel, Hash: HashBuffer(normalized)})
	}

	scan := &FolderScan{
		Path:        path,
		Fingerprint: folderFingerprint(files, nil),
		Files:       files,
	}
	for _, variant := range fingerprintVariants {
		scan.Alternates = append(scan.Alternates, FolderFingerprint{
			Variant: variant.name,
			Hash:    folderFingerprint(files, variant.include),
		})
	}

	toc, err := ReadToc(fsys, path, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	scan.Toc = toc

	return scan, nil
}

// folderFingerprint aggregates the file hashes admitted by include (nil
// admits everything), sorted ascending so on-disk ordering never matters.
func folderFingerprint(files []FileFingerprint, include func(string) bool) uint32 {
	hashes := make([]uint32, 0, len(files))
	for _, f := range files {
		if include == nil || include(f.Path) {
			hashes = append(hashes, f.Hash)
		}
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	return HashFileHashes(hashes)
}
