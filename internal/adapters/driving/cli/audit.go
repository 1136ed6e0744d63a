package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	inventoryfile "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/file"
	inventorysqlite "github.com/oakfield-labs/sitemapper-cli/internal/adapters/driven/inventory/sqlite"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driving"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/services"
	"github.com/oakfield-labs/sitemapper-cli/internal/logger"
)

var (
	auditOutput string
	auditCSV    string
	auditChild  string
	auditLocal  string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Analyse the shared folder and build the file inventory",
	Long: `Lists the configured public folder, reports duplicate files and
files present in only one location, and writes the renaming inventory.
The drive is never modified; renaming stays an operator decision.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditOutput, "output", "o", "file-mapping.json", "inventory output path")
	auditCmd.Flags().StringVar(&auditCSV, "csv", "", "also export the inventory as CSV")
	auditCmd.Flags().StringVar(&auditChild, "child", "Public", "subfolder to compare against the root")
	auditCmd.Flags().StringVar(&auditLocal, "local", "", "audit a local directory instead of Drive")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	source, err := newFileSource(ctx, auditLocal)
	if err != nil {
		return err
	}

	cmd.Printf("Listing files (%s)...\n", source.Type())
	records, err := source.List(ctx)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}

	report, err := services.NewAuditor().Audit(ctx, records, auditChild)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	cmd.Printf("Scanned %d files under %q\n\n", report.TotalFiles, report.RootName)
	printDuplicates(cmd, report.Duplicates)
	printExclusive(cmd, "Only at root", report.RootOnly)
	printExclusive(cmd, fmt.Sprintf("Only under %s", auditChild), report.ChildOnly)
	printRecommendations(cmd, report)

	if err := inventoryfile.NewStore(auditOutput).WriteJSON(&report.Inventory); err != nil {
		return err
	}
	cmd.Printf("Inventory written to %s (%d files)\n", auditOutput, len(report.Inventory.Files))

	if auditCSV != "" {
		if err := inventoryfile.WriteCSV(auditCSV, report.Inventory.Files); err != nil {
			return err
		}
		cmd.Printf("CSV written to %s\n", auditCSV)
	}

	cacheRun(report.Inventory)
	return nil
}

// cacheRun stores the inventory in the local cache. Cache trouble is not
// fatal to an audit; the JSON output already exists.
func cacheRun(doc domain.InventoryDocument) {
	cache, err := inventorysqlite.NewStore(dataDir())
	if err != nil {
		logger.Warn("inventory cache unavailable: %v", err)
		return
	}
	defer cache.Close()

	if err := cache.SaveRun(doc); err != nil {
		logger.Warn("cache inventory run: %v", err)
	}
}

func printDuplicates(cmd *cobra.Command, sets []driving.DuplicateSet) {
	if len(sets) == 0 {
		cmd.Println("No duplicate files found.")
		cmd.Println()
		return
	}

	rows := make([]table.Row, 0, len(sets)*2)
	for _, set := range sets {
		keyKind := "name+size"
		if set.ByChecksum {
			keyKind = "md5"
		}
		for _, rec := range set.Records {
			rows = append(rows, table.Row{keyKind, rec.Name, rec.ParentPath, fmt.Sprintf("%.2f MB", rec.SizeMB())})
		}
	}

	cmd.Printf("Duplicate sets (%d):\n", len(sets))
	renderTable(os.Stdout, table.Row{"Key", "Name", "Location", "Size"}, rows)
	cmd.Println()
}

func printRecommendations(cmd *cobra.Command, report *driving.AuditReport) {
	cmd.Println("Recommendations:")

	if len(report.Duplicates) > 0 {
		var reclaimableMB float64
		for _, set := range report.Duplicates {
			for _, rec := range set.Records[1:] {
				reclaimableMB += rec.SizeMB()
			}
		}
		cmd.Printf("  - Removing duplicate copies would free %.2f MB across %d sets\n", reclaimableMB, len(report.Duplicates))
	}
	if len(report.RootOnly) > 0 {
		cmd.Printf("  - %d files exist only at the root; move them under %s if they belong on the site\n", len(report.RootOnly), auditChild)
	}
	if !report.ChildFound {
		cmd.Printf("  - No %q subfolder found; all files were treated as root-level\n", auditChild)
	}
	if len(report.Duplicates) == 0 && len(report.RootOnly) == 0 && report.ChildFound {
		cmd.Println("  - Folder structure looks clean; no action needed")
	}
	cmd.Println()
}

func printExclusive(cmd *cobra.Command, label string, records []domain.FileRecord) {
	if len(records) == 0 {
		return
	}

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{rec.Name, rec.ParentPath, fmt.Sprintf("%.2f MB", rec.SizeMB())})
	}

	cmd.Printf("%s (%d):\n", label, len(records))
	renderTable(os.Stdout, table.Row{"Name", "Location", "Size"}, rows)
	cmd.Println()
}
