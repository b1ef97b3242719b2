package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Extensions that contribute to a folder's identity. The descriptor is
// metadata rather than content, and art, audio and documentation never
// affect the fingerprint.
var contentExtensions = map[string]bool{
	".lua": true,
	".xml": true,
}

// IsContentFile reports whether a file participates in fingerprinting,
// judged by extension, case-insensitively.
func IsContentFile(name string) bool {
	return contentExtensions[strings.ToLower(filepath.Ext(name))]
}

// WoW locale tokens as they appear in localization filenames, e.g.
// "Localization.deDE.lua".
var localeTokens = []string{
	"enUS", "enGB", "deDE", "frFR", "esES", "esMX", "itIT",
	"koKR", "ptBR", "ruRU", "zhCN", "zhTW",
}

// isLocalizationFile reports whether a relative path names a
// localization-only file: either it sits under a localization directory or
// its filename carries a locale token. The catalog has historically
// fingerprinted folders both with and without these.
func isLocalizationFile(relPath string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(relPath), "/") {
		switch strings.ToLower(seg) {
		case "localization", "localisation", "locales", "locale":
			return true
		}
	}

	base := filepath.Base(relPath)
	for _, token := range localeTokens {
		if strings.Contains(base, token) {
			return true
		}
	}
	return false
}

// walkContentFiles enumerates every content file under root, returning
// slash-separated paths relative to root in lexical order.
func walkContentFiles(fsys afero.Fs, root string) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsContentFile(info.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
