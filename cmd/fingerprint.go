package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/addonscan/internal/scan"
	"github.com/bnema/addonscan/internal/ui/styles"
)

var (
	fingerprintJSON  bool
	fingerprintFiles bool
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <folder>",
	Short: "Show fingerprint details for a single addon folder",
	Long: `Fingerprint one addon folder and show everything that went into
its identity: the primary and alternate folder fingerprints, the
descriptor summary, and optionally every per-file hash.

Examples:
  addonscan fingerprint ~/games/wow/Interface/AddOns/pfQuest
  addonscan fingerprint --files ~/games/wow/Interface/AddOns/pfQuest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := scan.ScanFolder(afero.NewOsFs(), path)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if fingerprintJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printFolderScan(result)
		return nil
	},
}

func printFolderScan(result *scan.FolderScan) {
	fmt.Println(styles.Title.Render(filepath.Base(result.Path)))
	fmt.Println()

	printField("Path", result.Path)
	printField("Fingerprint", fmt.Sprintf("%d", result.Fingerprint))
	for _, alt := range result.Alternates {
		printField(alt.Variant, fmt.Sprintf("%d", alt.Hash))
	}
	printField("Files", fmt.Sprintf("%d", len(result.Files)))

	if toc := result.Toc; toc != nil {
		fmt.Println()
		printField("Descriptor", toc.Name+".toc")
		if toc.Title != "" {
			printField("Title", toc.Title)
		}
		if toc.Version != "" {
			printField("Version", toc.Version)
		}
		if toc.Author != "" {
			printField("Author", toc.Author)
		}
		if len(toc.Interface) > 0 {
			printField("Interface", strings.Join(toc.Interface, ", "))
		}
		if len(toc.Files) > 0 {
			printField("Declared", fmt.Sprintf("%d files", len(toc.Files)))
		}
	} else {
		fmt.Println()
		fmt.Println(styles.MutedText.Render("No descriptor file"))
	}

	if prov := scan.DetectProvenance(result.Path); prov != nil {
		fmt.Println()
		if prov.GitURL != "" {
			printField("Git URL", prov.GitURL)
		}
		if prov.Commit != "" {
			printField("Commit", prov.Commit)
		}
	}

	if fingerprintFiles && len(result.Files) > 0 {
		fmt.Println()
		fmt.Println(styles.MutedText.Render("File fingerprints:"))
		for _, f := range result.Files {
			fmt.Printf("  %s %-10d %s\n", styles.Bullet, f.Hash, f.Path)
		}
	}
}

func printField(label, value string) {
	fmt.Printf("%-16s %s\n", label+":", styles.NormalText.Render(value))
}

func init() {
	fingerprintCmd.Flags().BoolVar(&fingerprintJSON, "json", false, "Output result as JSON")
	fingerprintCmd.Flags().BoolVar(&fingerprintFiles, "files", false, "List every file fingerprint")
	rootCmd.AddCommand(fingerprintCmd)
}
