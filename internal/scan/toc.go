package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// wowColorCodeRegex matches WoW color escape sequences like |cffRRGGBB and |r
var wowColorCodeRegex = regexp.MustCompile(`\|c[0-9a-fA-F]{8}|\|r`)

// stripWoWColorCodes removes WoW color escape sequences from a string
func stripWoWColorCodes(s string) string {
	return wowColorCodeRegex.ReplaceAllString(s, "")
}

// TocDescriptor contains parsed information from a .toc descriptor file.
type TocDescriptor struct {
	Name      string   `json:"name"` // descriptor filename without extension
	Title     string   `json:"title,omitempty"`
	Version   string   `json:"version,omitempty"`
	Author    string   `json:"author,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Interface []string `json:"interface,omitempty"` // supported game-version tokens
	Files     []string `json:"files,omitempty"`     // declared sub-files, in order
}

// Client-flavor suffixes probed after the base descriptor name. Both the
// underscore and dash separators occur in the wild.
var flavorSuffixes = []string{
	"Mainline", "Standard", "Vanilla", "Classic", "TBC", "BCC",
	"Wrath", "WOTLKC", "Cata", "Mists",
}

// FindTocFile locates the descriptor for a folder: the folder's own name
// plus ".toc" (case-insensitive), then flavor-suffixed variants with the
// base name always preferred, and finally any .toc at the folder root so
// renamed folders still surface their metadata. Returns "" when the folder
// has no descriptor at all.
func FindTocFile(fsys afero.Fs, dir, folderName string) (string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return "", err
	}

	byLower := make(map[string]string)
	var tocNames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".toc") {
			byLower[strings.ToLower(name)] = name
			tocNames = append(tocNames, name)
		}
	}
	if len(tocNames) == 0 {
		return "", nil
	}

	probes := []string{folderName + ".toc"}
	for _, suffix := range flavorSuffixes {
		probes = append(probes, folderName+"_"+suffix+".toc", folderName+"-"+suffix+".toc")
	}
	for _, probe := range probes {
		if actual, ok := byLower[strings.ToLower(probe)]; ok {
			return filepath.Join(dir, actual), nil
		}
	}

	// No name match; fall back to the first descriptor in lexical order.
	sort.Strings(tocNames)
	return filepath.Join(dir, tocNames[0]), nil
}

// ReadToc finds and parses the descriptor for one addon folder. A missing
// descriptor is not an error: the result is (nil, nil). A descriptor that
// exists but cannot be read is an I/O error.
func ReadToc(fsys afero.Fs, dir, folderName string) (*TocDescriptor, error) {
	tocPath, err := FindTocFile(fsys, dir, folderName)
	if err != nil {
		return nil, fmt.Errorf("failed to locate descriptor: %w", err)
	}
	if tocPath == "" {
		return nil, nil
	}

	file, err := fsys.Open(tocPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer func() { _ = file.Close() }()

	name := strings.TrimSuffix(filepath.Base(tocPath), filepath.Ext(tocPath))
	toc, err := parseToc(file, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return toc, nil
}

func parseToc(r io.Reader, name string) (*TocDescriptor, error) {
	toc := &TocDescriptor{Name: name}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Directive lines start with ##; a single # is a comment.
		if strings.HasPrefix(line, "##") {
			directive := strings.TrimSpace(strings.TrimPrefix(line, "##"))
			parts := strings.SplitN(directive, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			switch strings.ToLower(key) {
			case "title":
				toc.Title = stripWoWColorCodes(value)
			case "version":
				toc.Version = value
			case "author":
				toc.Author = value
			case "notes":
				toc.Notes = stripWoWColorCodes(value)
			case "interface":
				for _, token := range strings.Split(value, ",") {
					if token = strings.TrimSpace(token); token != "" {
						toc.Interface = append(toc.Interface, token)
					}
				}
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		// Everything else is a declared file entry.
		toc.Files = append(toc.Files, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return toc, nil
}
