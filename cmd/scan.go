package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/addonscan/internal/logger"
	"github.com/bnema/addonscan/internal/scan"
	"github.com/bnema/addonscan/internal/ui/progress"
	"github.com/bnema/addonscan/internal/ui/styles"
)

var (
	scanJSON        bool
	scanConcurrency int
	scanProgress    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <addons-dir>",
	Short: "Fingerprint every addon folder in a directory",
	Long: `Fingerprint every addon folder directly under the given AddOns
directory and print one result per folder.

Each folder's content files are normalized and hashed with the
catalog-compatible fingerprint, and the descriptor metadata is attached
when present. One folder failing never hides results for its siblings.

Examples:
  addonscan scan ~/games/wow/Interface/AddOns
  addonscan scan --json ~/games/wow/Interface/AddOns
  addonscan scan --progress ~/games/wow/Interface/AddOns`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		names, paths, err := listAddonFolders(dir)
		if err != nil {
			return fmt.Errorf("failed to read addons directory: %w", err)
		}
		if len(paths) == 0 {
			fmt.Println("No addon folders found")
			return nil
		}

		logger.Debug("starting catalog scan", "dir", dir, "folders", len(paths))

		fsys := afero.NewOsFs()
		var outcomes []scan.CatalogOutcome
		if scanProgress && !scanJSON {
			outcomes = scanWithProgress(fsys, dir, names, paths)
		} else {
			outcomes = scan.ScanAllCatalog(fsys, paths, scanConcurrency, nil, nil)
		}

		if scanJSON {
			return printScanJSON(outcomes)
		}
		printScanTable(names, outcomes)
		return nil
	},
}

// scanWithProgress runs the batch behind a live progress display. The
// scan keeps running even if the display is dismissed early.
func scanWithProgress(fsys afero.Fs, dir string, names, paths []string) []scan.CatalogOutcome {
	p := tea.NewProgram(progress.NewModel("Scanning "+dir, names...))

	done := make(chan []scan.CatalogOutcome, 1)
	go func() {
		done <- scan.ScanAllCatalog(fsys, paths, scanConcurrency,
			func(i int, path string) {
				p.Send(progress.FolderStartMsg{Index: i})
			},
			func(i int, path string, err error) {
				p.Send(progress.FolderDoneMsg{Index: i, Err: err})
			})
		p.Send(progress.AllDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		logger.Warn("progress display failed", "error", err)
	}
	return <-done
}

func printScanTable(names []string, outcomes []scan.CatalogOutcome) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		styles.Title.Render("FOLDER"),
		styles.Title.Render("FINGERPRINT"),
		styles.Title.Render("VERSION"),
		styles.Title.Render("TITLE"),
		styles.Title.Render("TOC"),
	)

	failed := 0
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			_, _ = fmt.Fprintf(w, "%s\t%s\t\t\t\n",
				names[i], styles.ErrorText.Render("error"))
			continue
		}

		s := outcome.Scan
		version, title := "-", "-"
		if s.Toc != nil {
			if s.Toc.Version != "" {
				version = s.Toc.Version
			}
			if s.Toc.Title != "" {
				title = s.Toc.Title
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			names[i], s.Fingerprint, version, title,
			styles.FormatTocStatus(s.Toc != nil))
	}
	_ = w.Flush()

	for i, outcome := range outcomes {
		if outcome.Err != nil {
			progress.PrintError(fmt.Sprintf("%s: %v", names[i], outcome.Err))
		}
	}
	progress.PrintSummary("%d folders scanned, %d failed", len(outcomes), failed)
}

// scanOutcomeJSON flattens a batch slot for machine output; errors are
// rendered as strings since they do not marshal themselves.
type scanOutcomeJSON struct {
	Path  string `json:"path"`
	Error string `json:"error,omitempty"`
	*scan.FolderScan
}

func printScanJSON(outcomes []scan.CatalogOutcome) error {
	out := make([]scanOutcomeJSON, len(outcomes))
	for i, outcome := range outcomes {
		out[i] = scanOutcomeJSON{Path: outcome.Path, FolderScan: outcome.Scan}
		if outcome.Err != nil {
			out[i].Error = outcome.Err.Error()
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output results as JSON")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", scan.DefaultConcurrency, "Number of folders scanned at once")
	scanCmd.Flags().BoolVar(&scanProgress, "progress", false, "Show a live progress display")
	rootCmd.AddCommand(scanCmd)
}
