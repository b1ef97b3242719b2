package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/addonscan/internal/logger"
	"github.com/bnema/addonscan/internal/scan"
	"github.com/bnema/addonscan/internal/ui/progress"
	"github.com/bnema/addonscan/internal/ui/styles"
)

var metaConcurrency int

var metaCmd = &cobra.Command{
	Use:   "meta <addons-dir>",
	Short: "List addons carrying self-describing metadata",
	Long: `Look for the tool-authored sidecar metadata file in every addon
folder under the given AddOns directory. Folders installed by other means
carry no sidecar and are simply skipped; a sidecar that is present but
malformed is reported.

Examples:
  addonscan meta ~/games/wow/Interface/AddOns`,
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

		logger.Debug("starting sidecar scan", "dir", dir, "folders", len(paths))

		outcomes := scan.ScanAllSidecar(afero.NewOsFs(), paths, metaConcurrency, nil, nil)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			styles.Title.Render("FOLDER"),
			styles.Title.Render("ADDON"),
			styles.Title.Render("PROVIDER"),
			styles.Title.Render("VERSION"),
			styles.Title.Render("CHANNEL"),
		)

		found := 0
		for i, outcome := range outcomes {
			if outcome.Err != nil || outcome.Scan == nil {
				continue
			}
			found++
			meta := outcome.Scan.Meta
			version := meta.Version
			if version == "" {
				version = "-"
			}
			channel := meta.Channel
			if channel == "" {
				channel = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				names[i], meta.Name,
				styles.FormatSidecarProvider(meta.Provider),
				version, channel)
		}
		_ = w.Flush()

		for i, outcome := range outcomes {
			if outcome.Err != nil {
				progress.PrintWarning(fmt.Sprintf("%s: %v", names[i], outcome.Err))
			}
		}
		progress.PrintSummary("%d of %d folders carry metadata", found, len(outcomes))
		return nil
	},
}

func init() {
	metaCmd.Flags().IntVar(&metaConcurrency, "concurrency", scan.DefaultConcurrency, "Number of folders scanned at once")
	rootCmd.AddCommand(metaCmd)
}
