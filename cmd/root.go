package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bnema/addonscan/internal/logger"
)

// Version info set via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "addonscan",
	Short:   "Identify installed WoW addons by content fingerprint",
	Version: version + " (" + commit + ")",
	Long: `A Go CLI tool to identify which addons are installed in a WoW
AddOns directory. Folders are fingerprinted with the catalog-compatible
content hash, so an installed folder can be resolved to a known published
package even without version metadata.

Quick start:
  addonscan scan <addons-dir>      Fingerprint every addon folder
  addonscan fingerprint <folder>   Inspect a single folder in detail`,
}

func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		_ = logger.Init(verbose)
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")
}

// listAddonFolders returns the candidate addon folders directly under dir,
// sorted by name. Hidden folders never hold addons.
func listAddonFolders(dir string) (names []string, paths []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths = make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return names, paths, nil
}
